package request

import (
	"context"
	"log/slog"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/core/events"
)

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{repo: repo, bus: bus, logger: logger}
}

// Create raises a new leave request for the employee behind the dni. Every
// request starts PENDIENTE.
func (s *Service) Create(dni int, dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	reqType, err := TypeFromString(dto.RequestType)
	if err != nil {
		return nil, err
	}

	employeeID, err := s.repo.EmployeeIDByDNI(dni)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}

	req := &Request{
		RequestType:  reqType,
		DurationDays: dto.DurationDays,
		Reason:       dto.Reason,
		Status:       StatusPending,
		EmployeeID:   employeeID,
	}
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}

	s.logger.Info("leave request created", "request_id", req.ID, "employee_id", employeeID, "type", reqType)
	return req, nil
}

// ListOwn returns the requests raised by the employee behind the dni.
func (s *Service) ListOwn(dni int) ([]Request, error) {
	employeeID, err := s.repo.EmployeeIDByDNI(dni)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	return s.repo.ListByEmployeeID(employeeID)
}

// ListForSupervisor returns the pending and resolved requests of the
// employees working in the supervisor's sector.
func (s *Service) ListForSupervisor(dni int) ([]Request, error) {
	return s.repo.ListBySupervisorDNI(dni)
}

// ChangeStatus resolves a request and publishes the status change.
func (s *Service) ChangeStatus(id int64, dto ChangeStatusDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status, err := StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrRequestNotFound.WithCause(err)
	}

	if req.Status == status {
		return req, nil
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	req.Status = status

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewRequestStatusChanged(id, string(status)))
	}

	s.logger.Info("leave request resolved", "request_id", id, "status", status)
	return req, nil
}
