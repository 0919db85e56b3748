package employee

import "context"

type EmployeeRepository interface {
	// All returns every employee in storage order.
	All(ctx context.Context) ([]Employee, error)
	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (Employee, error)
}
