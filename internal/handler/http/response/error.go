package response

import (
	"errors"
	"net/http"

	"github.com/jakubK11/timereport/internal/domain/auth"
	"github.com/jakubK11/timereport/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Scope-configuration
// faults (missing employee mapping, dangling employee id) deliberately fall
// through to the generic internal error so mapping details never leak to the
// caller.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
