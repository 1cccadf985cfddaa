package users

import "codeberg.org/skillsprint/webfront/skillsprint/users"

// ListResponse wraps a page of managed users
type ListResponse struct {
	Users []users.User `json:"users"`
	Total int          `json:"total"`
}

// UserResponse wraps a single managed user
type UserResponse struct {
	User *users.User `json:"user"`
}

// UpdateRoleRequest assigns a role to a user
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
