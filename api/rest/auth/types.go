package auth

import (
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
)

// LoginRequest carries credentials for the backend login mutation
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries account creation fields
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse returned after successful login, registration or OAuth callback
type AuthResponse struct {
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

// SessionResponse exposes the settled session state
type SessionResponse struct {
	Session session.State `json:"session"`
}

// UserResponse wraps a locally provisioned user
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileRequest for updating user profile
type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	AvatarURL string `json:"avatar_url" binding:"max=500"`
}
