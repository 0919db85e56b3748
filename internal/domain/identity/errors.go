package identity

import "errors"

var (
	// ErrNoEmployeeMapping means an authenticated non-admin identity has no
	// entry in the subject directory. This is a configuration fault, not a
	// user error; callers see a generic internal error.
	ErrNoEmployeeMapping = errors.New("no employee mapping for authenticated user")
)
