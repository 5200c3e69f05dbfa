package employee

import (
	"fmt"
	"log/slog"

	"github.com/adminrec/personnel-management/internal"
)

type Service struct {
	repo        Repository
	accounts    AccountRegistrar
	attendances AttendanceReader
	logger      *slog.Logger
}

func NewService(repo Repository, accounts AccountRegistrar, attendances AttendanceReader, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		accounts:    accounts,
		attendances: attendances,
		logger:      logger,
	}
}

func (s *Service) List() ([]Employee, error) {
	return s.repo.List()
}

func (s *Service) Get(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	return e, nil
}

// Create stores the employee, opens the first employment-history entry and
// registers a login account for the employee's dni.
func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.repo.PositionExists(dto.PositionID)
	if err != nil {
		return nil, fmt.Errorf("resolve position: %w", err)
	}
	if !ok {
		return nil, internal.ErrPositionNotFound
	}

	e := &Employee{
		LastName:   dto.LastName,
		FirstName:  dto.FirstName,
		DNI:        dto.DNI,
		Email:      dto.Email,
		Address:    dto.Address,
		BirthDate:  dto.BirthDate,
		HireDate:   dto.HireDate,
		Phone:      dto.Phone,
		PositionID: dto.PositionID,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, err
	}

	if err := s.repo.OpenHistoryEntry(e.ID, e.PositionID); err != nil {
		return nil, fmt.Errorf("open history entry: %w", err)
	}

	if err := s.accounts.RegisterAccount(e.DNI, dto.Password); err != nil {
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", e.ID, "dni", e.DNI)
	return e, nil
}

// Update applies the new data. A position change closes the current history
// entry and opens a new one for the incoming position.
func (s *Service) Update(id int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}

	ok, err := s.repo.PositionExists(dto.PositionID)
	if err != nil {
		return nil, fmt.Errorf("resolve position: %w", err)
	}
	if !ok {
		return nil, internal.ErrPositionNotFound
	}

	positionChanged := e.PositionID != dto.PositionID

	e.LastName = dto.LastName
	e.FirstName = dto.FirstName
	e.DNI = dto.DNI
	e.Email = dto.Email
	e.Address = dto.Address
	e.BirthDate = dto.BirthDate
	e.HireDate = dto.HireDate
	e.Phone = dto.Phone
	e.PositionID = dto.PositionID

	if err := s.repo.Update(e); err != nil {
		return nil, err
	}

	if positionChanged {
		if err := s.repo.CloseCurrentHistoryEntry(e.ID); err != nil {
			return nil, fmt.Errorf("close history entry: %w", err)
		}
		if err := s.repo.OpenHistoryEntry(e.ID, e.PositionID); err != nil {
			return nil, fmt.Errorf("open history entry: %w", err)
		}
		s.logger.Info("employee position changed", "employee_id", e.ID, "position_id", e.PositionID)
	}

	return e, nil
}

func (s *Service) Delete(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return nil, err
	}
	s.logger.Info("employee soft-deleted", "employee_id", id)
	return e, nil
}

func (s *Service) History(id int64) ([]HistoryEntry, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	return s.repo.HistoryOf(id)
}

// Attendances feeds the salary report with the employee's check-ins.
func (s *Service) Attendances(id int64) ([]Attendance, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	return s.attendances.ListByEmployeeID(id)
}
