package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for locally issued tokens
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
