package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "error", err)
		var vErr ValidationError
		if errors.As(err, &vErr) {
			h.WriteError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Status:       "success",
		Message:      "login succeeded",
		Token:        result.Token,
		Role:         result.Role.String(),
		EmployeeName: result.DisplayName,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		h.Logger.Warn("account registration failed", "dni", dto.DNI, "error", err)
		var vErr ValidationError
		if errors.As(err, &vErr) {
			h.WriteError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"status": "success"})
}

// AuthMiddleware validates the bearer token and threads an immutable
// AuthContext through the request. Absence or invalidity leaves the request
// unauthenticated; the route's own role check then rejects it.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			// Expired vs malformed matters only here, for the log line.
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		authCtx := internal.AuthContext{
			Subject:     claims.Subject,
			Role:        claims.Role,
			DisplayName: claims.EmployeeName,
			Claims: map[string]string{
				ClaimRole:         claims.Role,
				ClaimEmployeeName: claims.EmployeeName,
				ClaimEmployeeDNI:  claims.EmployeeDNI,
			},
		}

		ctx := internal.ContextWithAuth(r.Context(), authCtx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
