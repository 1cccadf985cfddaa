package courses

import "codeberg.org/skillsprint/webfront/internal/backend"

// ListResponse wraps the public catalog
type ListResponse struct {
	Courses []backend.Course `json:"courses"`
}

// CourseResponse wraps one catalog entry
type CourseResponse struct {
	Course *backend.Course `json:"course"`
}
