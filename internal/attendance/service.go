package attendance

import (
	"log/slog"
	"time"

	"github.com/adminrec/personnel-management/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register records a check-in for the employee behind the dni. At most one
// check-in per calendar day is allowed.
func (s *Service) Register(dni int) (*Attendance, error) {
	employeeID, err := s.repo.EmployeeIDByDNI(dni)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}

	ts := s.now()
	registered, err := s.repo.HasCheckInOn(employeeID, ts)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, internal.ErrAttendanceRegistered
	}

	a := &Attendance{EmployeeID: employeeID, CheckedIn: ts}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}

	s.logger.Info("attendance registered", "employee_id", employeeID)
	return a, nil
}

// List returns the check-ins of the employee behind the dni.
func (s *Service) List(dni int) ([]Attendance, error) {
	employeeID, err := s.repo.EmployeeIDByDNI(dni)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound.WithCause(err)
	}
	return s.repo.ListByEmployeeID(employeeID)
}
