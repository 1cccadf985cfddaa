package gate

import (
	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/session"
	"github.com/gin-gonic/gin"
)

// context key under which the session middleware stores the caller's store
const ContextStoreKey = "session_store"

// returns the caller's session store placed in context by the session
// middleware
func StoreFrom(c *gin.Context) (*session.Store, bool) {
	v, exists := c.Get(ContextStoreKey)
	if !exists {
		return nil, false
	}

	store, ok := v.(*session.Store)
	return store, ok
}

// Require gates a route tree on a capability. An unsettled session gets a
// blocking 503 (never a denial), a settled session lacking the capability
// gets the forbidden view, and an allowed request passes through. The
// first request of a session triggers verification of any rehydrated token.
func Require(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			c.Abort()
			return
		}

		if !store.Initialized() {
			store.CheckAuth(c.Request.Context())
		}

		st := store.State()

		switch Decide(st, capability) {
		case Pending:
			errors.Initializing(c)
			c.Abort()

		case Denied:
			if st.IsAuthenticated {
				errors.Forbidden(c, "")
			} else {
				errors.Unauthorized(c, "")
			}
			c.Abort()

		case Allowed:
			c.Next()
		}
	}
}
