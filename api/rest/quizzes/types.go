package quizzes

import "encoding/json"

// CreateRequest is the payload for adding a quiz to a course. Questions
// arrive as structured JSON and travel to the backend re-encoded as a
// string, which is the shape its schema expects.
type CreateRequest struct {
	CourseID  string          `json:"course_id" binding:"required"`
	Title     string          `json:"title" binding:"required"`
	Questions json.RawMessage `json:"questions" binding:"required"`
}

// CreateResponse carries the new quiz's backend ID
type CreateResponse struct {
	ID string `json:"id"`
}

// ReorderRequest is the full ordered ID list for a course's quizzes
type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
