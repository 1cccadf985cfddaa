package session

// ComputeIsAdmin reports whether the user holds the admin capability.
// The role is the primary signal; the well-known admin email is a deliberate
// secondary signal so admin access never depends on the role string alone.
func ComputeIsAdmin(user *User, adminEmail string) bool {
	if user == nil {
		return false
	}

	if user.Role == RoleAdmin {
		return true
	}

	return adminEmail != "" && user.Email == adminEmail
}
