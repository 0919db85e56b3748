package identity

import "context"

// AccessScope is the resolved authorization boundary for one request: either
// every subject (admin) or exactly one employee. It is built once per request
// and never mutated.
type AccessScope struct {
	admin      bool
	employeeID int64
}

func AdminScope() AccessScope {
	return AccessScope{admin: true}
}

func EmployeeScope(employeeID int64) AccessScope {
	return AccessScope{employeeID: employeeID}
}

func (s AccessScope) IsAdmin() bool {
	return s.admin
}

// EmployeeID returns the single employee the scope is restricted to. Only
// meaningful when IsAdmin is false.
func (s AccessScope) EmployeeID() int64 {
	return s.employeeID
}

// Resolver turns the authenticated caller of a request into an AccessScope.
type Resolver interface {
	Resolve(ctx context.Context) (AccessScope, error)
}
