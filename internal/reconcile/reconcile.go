package reconcile

import (
	"time"

	"codeberg.org/skillsprint/webfront/internal/logger"
	"codeberg.org/skillsprint/webfront/internal/session"
	"github.com/markbates/goth"
)

// token value marking an OAuth-derived session that carries no bearer JWT.
// The backend treats it as an anonymous credential; it exists so the
// persisted snapshot shape is uniform across both identity sources.
const SentinelToken = "oauth-session"

// OAuth provider session status as the reconciler observes it
type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

// Reconciler keeps the OAuth provider's notion of identity consistent with
// the session store. It is the single code path allowed to merge an OAuth
// identity, which is what makes the never-clobber-a-real-token rule
// enforceable.
type Reconciler struct {
	store *session.Store
}

// creates a reconciler bound to one session store
func New(store *session.Store) *Reconciler {
	return &Reconciler{store: store}
}

// Observe processes one provider status transition. Rules:
//   - first observation settles the store (idempotent flag, no re-verification)
//   - authenticated: merge the provider identity, reusing any token already
//     held so a genuine JWT is never overwritten with the sentinel
//   - unauthenticated: no store mutation; only user-initiated logout or an
//     explicit backend rejection clears a session, so a transient OAuth
//     expiry cannot log out a credentials-authenticated user
func (r *Reconciler) Observe(status Status, payload *goth.User) {
	if !r.store.Initialized() {
		r.store.Initialize()
	}

	switch status {
	case StatusAuthenticated:
		if payload == nil {
			return
		}

		user := UserFromProvider(*payload)

		held := r.store.State()
		if held.User != nil && held.User.ID != user.ID {
			// unresolved upstream policy: two live identity sources
			// disagreeing resolves as last write wins
			logger.Warn("oauth identity differs from held session, last write wins",
				"held_id", held.User.ID,
				"incoming_id", user.ID,
			)
		}

		token := r.store.Token()
		if token == "" {
			token = SentinelToken
		}

		r.store.Login(user, token)

	case StatusLoading, StatusUnauthenticated:
		// provider errors surface as unauthenticated; neither produces a
		// store mutation
	}
}

// maps a provider payload to the session user model, defaulting the role
// to USER when the provider carries none
func UserFromProvider(gu goth.User) session.User {
	role := session.RoleUser
	if raw, ok := gu.RawData["role"].(string); ok {
		if candidate := session.Role(raw); candidate.Valid() {
			role = candidate
		}
	}

	name := gu.Name
	if name == "" && (gu.FirstName != "" || gu.LastName != "") {
		name = gu.FirstName
		if gu.LastName != "" {
			if name != "" {
				name += " "
			}
			name += gu.LastName
		}
	}

	return session.User{
		ID:        gu.UserID,
		Email:     gu.Email,
		Name:      name,
		Avatar:    gu.AvatarURL,
		CreatedAt: time.Now().UTC(),
		Role:      role,
	}
}
