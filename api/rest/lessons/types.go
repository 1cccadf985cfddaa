package lessons

// CreateRequest is the payload for adding a lesson to a course
type CreateRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	VideoURL string `json:"video_url" binding:"required"`
	Avatar   string `json:"avatar"`
}

// CreateResponse carries the new lesson's backend ID
type CreateResponse struct {
	ID string `json:"id"`
}

// ReorderRequest is the full ordered ID list for a course's lessons
type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// UpdateRequest is a partial lesson update; nil fields are left untouched
type UpdateRequest struct {
	Order    *int    `json:"order"`
	Title    *string `json:"title"`
	VideoURL *string `json:"video_url"`
	Avatar   *string `json:"avatar"`
	Visible  *bool   `json:"visible"`
}
