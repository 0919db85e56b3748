package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jakubK11/timereport/internal/domain/auth"
	"github.com/jakubK11/timereport/internal/handler/http/response"
)

// AuthRequired rejects requests that did not carry a valid access token. It
// runs after jwtauth.Verifier, which parses the token into the request
// context; handlers behind it can assume the claims are present.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Only access tokens open the API surface.
			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
