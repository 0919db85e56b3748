package project

import "context"

type ProjectRepository interface {
	// All returns every project in storage order.
	All(ctx context.Context) ([]Project, error)
}
