package session

import (
	"context"
	"errors"
	"sync"

	"codeberg.org/skillsprint/webfront/internal/logger"
)

// Store is the single authoritative holder of one browser session's auth
// state. All mutation goes through Login/Logout/CheckAuth; readers get
// value copies via State(). Every mutating operation persists its snapshot
// before returning, so the stored snapshot and the in-memory state never
// diverge.
type Store struct {
	mu sync.Mutex

	key        string
	state      State
	verifier   IdentityVerifier
	snapshots  SnapshotStore
	adminEmail string

	// guards against duplicate concurrent verification round-trips
	checking bool
}

// creates a store for one browser session, rehydrating the last known
// snapshot before anything can observe the zero state. Initialized stays
// false until the first CheckAuth/Initialize, so a rehydrated session is
// available for optimistic rendering but not yet trusted.
func NewStore(key string, verifier IdentityVerifier, snapshots SnapshotStore, adminEmail string) *Store {
	s := &Store{
		key:        key,
		verifier:   verifier,
		snapshots:  snapshots,
		adminEmail: adminEmail,
	}

	snap, ok, err := snapshots.Load(context.Background(), key)
	if err != nil {
		logger.ErrorErr(err, "failed to load session snapshot", "sid", key)
		return s
	}

	if ok {
		s.state.User = snap.User
		s.state.Token = snap.Token
		s.state.IsAuthenticated = snap.IsAuthenticated
		s.state.IsAdmin = snap.IsAdmin
	}

	return s
}

// returns a copy of the current session state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if s.state.User != nil {
		u := *s.state.User
		st.User = &u
	}

	return st
}

// returns the current bearer token, empty when anonymous
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// adopts a freshly authenticated identity. Trusted internal call made only
// after a successful upstream authentication; there is no error path.
func (s *Store) Login(user User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.state.User = &u
	s.state.Token = token
	s.state.IsAuthenticated = true
	s.state.IsAdmin = ComputeIsAdmin(&u, s.adminEmail)
	s.state.Loading = false

	s.persistLocked()
}

// clears the session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()

	if err := s.snapshots.Delete(context.Background(), s.key); err != nil {
		logger.ErrorErr(err, "failed to delete session snapshot", "sid", s.key)
	}
}

// marks the store settled without a verification round-trip. Idempotent;
// used by the reconciler on first observation.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Initialized = true
}

// reports whether the first settle has happened this load
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Initialized
}

// CheckAuth reconciles the held token against the backend identity query.
// Outcomes:
//   - no token: settle as anonymous, zero network calls
//   - explicit 401/403: clear the session exactly like Logout
//   - valid identity: adopt it and recompute the admin flag
//   - anything else (network, timeout, malformed payload): keep the session
//     untouched; a flaky network must never silently log a user out
//
// Errors are swallowed here: CheckAuth runs from bootstrap paths where an
// escaped error would be worse than a stale session. Concurrent calls are
// deduplicated; the second caller returns immediately.
func (s *Store) CheckAuth(ctx context.Context) {
	s.mu.Lock()

	if s.checking {
		s.mu.Unlock()
		return
	}

	token := s.state.Token
	if token == "" {
		// an unauthenticated visitor is a valid terminal state, not an error
		s.state.Initialized = true
		s.mu.Unlock()
		return
	}

	s.checking = true
	s.state.Loading = true
	s.mu.Unlock()

	user, err := s.verifier.Me(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checking = false
	s.state.Loading = false
	s.state.Initialized = true

	switch {
	case err == nil && user != nil:
		u := *user
		s.state.User = &u
		s.state.IsAuthenticated = true
		s.state.IsAdmin = ComputeIsAdmin(&u, s.adminEmail)
		s.persistLocked()

	case errors.Is(err, ErrUnauthorized):
		// the one outcome allowed to wipe the session
		s.clearLocked()
		if derr := s.snapshots.Delete(context.Background(), s.key); derr != nil {
			logger.ErrorErr(derr, "failed to delete session snapshot", "sid", s.key)
		}

	default:
		// transient failure or empty payload: keep the last known session
		logger.Warn("identity verification inconclusive, keeping cached session",
			"sid", s.key,
			"error", err,
		)
	}
}

func (s *Store) clearLocked() {
	s.state.User = nil
	s.state.Token = ""
	s.state.IsAuthenticated = false
	s.state.IsAdmin = false
	s.state.Loading = false
}

func (s *Store) persistLocked() {
	snap := Snapshot{
		User:            s.state.User,
		Token:           s.state.Token,
		IsAuthenticated: s.state.IsAuthenticated,
		IsAdmin:         s.state.IsAdmin,
	}

	if err := s.snapshots.Save(context.Background(), s.key, snap); err != nil {
		logger.ErrorErr(err, "failed to persist session snapshot", "sid", s.key)
	}
}
