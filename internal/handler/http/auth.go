package http

import (
	"encoding/json"
	"net/http"

	"github.com/jakubK11/timereport/internal/domain/auth"
	"github.com/jakubK11/timereport/internal/handler/http/response"
	serviceAuth "github.com/jakubK11/timereport/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService serviceAuth.AuthService
}

func NewAuthHandler(svc serviceAuth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: svc,
	}
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.authService.Login(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
