package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jakubK11/timereport/internal/domain/identity"
	"github.com/jakubK11/timereport/internal/domain/user"
)

type resolverImpl struct {
	directory identity.Directory
}

func NewResolver(directory identity.Directory) identity.Resolver {
	return &resolverImpl{directory: directory}
}

// Resolve implements identity.Resolver. Admins get the unrestricted scope;
// everyone else is narrowed to the single employee the directory maps their
// username to. An authenticated user missing from the directory is a
// configuration fault, not an empty report.
func (r *resolverImpl) Resolve(ctx context.Context) (identity.AccessScope, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return identity.AccessScope{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == string(user.RoleAdmin) {
		return identity.AdminScope(), nil
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		slog.Error("username claim missing from access token")
		return identity.AccessScope{}, identity.ErrNoEmployeeMapping
	}

	employeeID, ok := r.directory.EmployeeIDFor(username)
	if !ok {
		slog.Error("no employee mapping for user", "username", username)
		return identity.AccessScope{}, identity.ErrNoEmployeeMapping
	}

	return identity.EmployeeScope(employeeID), nil
}
