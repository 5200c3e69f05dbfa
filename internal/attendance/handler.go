package attendance

import (
	"net/http"
	"strconv"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/transport"
)

type ServiceAPI interface {
	Register(dni int) (*Attendance, error)
	List(dni int) ([]Attendance, error)
}

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

// callerDNI resolves the authenticated employee's dni from the token subject.
func (h *Handler) callerDNI(w http.ResponseWriter, r *http.Request) (int, bool) {
	auth, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	dni, err := strconv.Atoi(auth.Subject)
	if err != nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid token subject")
		return 0, false
	}
	return dni, true
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	dni, ok := h.callerDNI(w, r)
	if !ok {
		return
	}

	a, err := h.Service.Register(dni)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":     "success",
		"attendance": a,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	dni, ok := h.callerDNI(w, r)
	if !ok {
		return
	}

	attendances, err := h.Service.List(dni)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"attendances": attendances,
	})
}
