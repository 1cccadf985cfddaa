package session

import "errors"

var (
	// the backend explicitly rejected the token (401/403); the only
	// verification outcome that clears a session
	ErrUnauthorized = errors.New("identity rejected")

	// the backend answered 2xx but the identity payload was missing or
	// malformed; treated as transient, never as a rejection
	ErrEmptyIdentity = errors.New("empty identity payload")
)
