package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/transport"
)

type ServiceAPI interface {
	Create(dni int, dto CreateRequestDTO) (*Request, error)
	ListOwn(dni int) ([]Request, error)
	ListForSupervisor(dni int) ([]Request, error)
	ChangeStatus(id int64, dto ChangeStatusDTO) (*Request, error)
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

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		h.WriteError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	h.WriteAppError(w, err)
}

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	dni, ok := h.callerDNI(w, r)
	if !ok {
		return
	}

	var dto CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Create(dni, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"request": req,
	})
}

func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	dni, ok := h.callerDNI(w, r)
	if !ok {
		return
	}

	requests, err := h.Service.ListOwn(dni)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"requests": requests,
	})
}

func (h *Handler) ListForSupervisor(w http.ResponseWriter, r *http.Request) {
	dni, ok := h.callerDNI(w, r)
	if !ok {
		return
	}

	requests, err := h.Service.ListForSupervisor(dni)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"requests": requests,
	})
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var dto ChangeStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.ChangeStatus(id, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"request": req,
	})
}
