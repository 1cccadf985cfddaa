package users

import (
	"time"

	"codeberg.org/skillsprint/webfront/internal/session"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a locally provisioned principal. OAuth sign-ins materialize
// here; credentials accounts live in the backend but registration caches a
// bcrypt hash under the 'local' pseudo-provider for fallback verification.
type User struct {
	ID         string       `json:"id"`
	Email      string       `json:"email"`
	Provider   string       `json:"provider"`
	ProviderID string       `json:"-"`
	Name       string       `json:"name"`
	AvatarURL  string       `json:"avatar_url"`
	Role       session.Role `json:"role"`
	LastLogin  *time.Time   `json:"last_login,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// maps a stored user into the session model
func (u *User) ToSessionUser() session.User {
	return session.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.AvatarURL,
		CreatedAt: u.CreatedAt,
		Role:      u.Role,
	}
}
