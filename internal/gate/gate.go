package gate

import "codeberg.org/skillsprint/webfront/internal/session"

// capability a route declares
type Capability int

const (
	Public Capability = iota
	Authenticated
	AdminOnly
)

func (c Capability) String() string {
	switch c {
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin"
	default:
		return "public"
	}
}

// outcome of checking a session state against a capability
type Decision int

const (
	// the session has not settled; no access decision may be made yet
	Pending Decision = iota
	Denied
	Allowed
)

// Decide checks a session state against a required capability. The
// unsettled check runs before any capability check so protected content
// can never be granted against a half-initialized session, whatever the
// rehydrated flags claim.
func Decide(st session.State, capability Capability) Decision {
	if !st.Initialized || st.Loading {
		return Pending
	}

	switch capability {
	case Public:
		return Allowed
	case Authenticated:
		if st.IsAuthenticated {
			return Allowed
		}
	case AdminOnly:
		if st.IsAuthenticated && st.IsAdmin {
			return Allowed
		}
	}

	return Denied
}
