package session

import (
	"context"
	"time"
)

// user role as reported by the backend
type Role string

const (
	RoleUser    Role = "USER"
	RoleLead    Role = "LEAD"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// reports whether the role is one the backend can emit; an empty role is
// tolerated and treated as USER-equivalent for rendering purposes
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleLead, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// represents an authenticated principal, built either from a credentials
// login response or from an OAuth provider payload
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Role      Role      `json:"role,omitempty"`
}

// State is the full session state as observed by readers. Loading and
// Initialized are transient per application load; the rest is persisted.
type State struct {
	User            *User  `json:"user"`
	Token           string `json:"token,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsAdmin         bool   `json:"isAdmin"`
	Loading         bool   `json:"loading"`
	Initialized     bool   `json:"initialized"`
}

// Snapshot is the persisted subset of State. Loading and Initialized are
// deliberately excluded so a fresh load always re-settles.
type Snapshot struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsAdmin         bool   `json:"is_admin"`
}

// IdentityVerifier resolves a bearer token to the identity the backend
// currently associates with it. Implementations must return ErrUnauthorized
// only for an explicit 401/403 rejection; any other failure is transient.
type IdentityVerifier interface {
	Me(ctx context.Context, token string) (*User, error)
}

// SnapshotStore persists the last known session snapshot per browser session.
type SnapshotStore interface {
	Save(ctx context.Context, key string, snap Snapshot) error
	Load(ctx context.Context, key string) (Snapshot, bool, error)
	Delete(ctx context.Context, key string) error
}
