package backend

import "errors"

var (
	// the login mutation rejected the credentials; surfaced to the form,
	// never touches the session store
	ErrInvalidCredentials = errors.New("invalid credentials")

	// the register mutation hit an existing account
	ErrDuplicateAccount = errors.New("account already exists")
)
