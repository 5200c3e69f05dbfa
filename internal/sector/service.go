package sector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/core/events"
)

// Service owns sector consultation and the supervisor-reconciliation engine:
// aligning employee supervisor flags and account roles with a target set.
type Service struct {
	repo     Repository
	flags    EmployeeFlagWriter
	accounts AccountRoleWriter
	bus      *events.EventBus
	logger   *slog.Logger

	// Reconciliation is serialized per sector; concurrent reassignments of
	// the same sector would otherwise interleave flag and role writes.
	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

func NewService(repo Repository, flags EmployeeFlagWriter, accounts AccountRoleWriter, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		flags:    flags,
		accounts: accounts,
		bus:      bus,
		logger:   logger,
		locks:    make(map[int64]*sync.Mutex),
	}
}

func (s *Service) List() ([]SectorDetail, error) {
	return s.repo.ListDetails()
}

func (s *Service) Get(id int64) (*SectorDetail, error) {
	detail, err := s.repo.Detail(id)
	if err != nil {
		return nil, internal.ErrSectorNotFound.WithCause(err)
	}
	return detail, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrSectorNotFound.WithCause(err)
	}
	return s.repo.SoftDelete(id)
}

// computeSupervisorChanges is the pure half of reconciliation: given the
// sector's employees and the target supervisor set, it decides which
// employees need their flag flipped. Employees already matching the target
// are left out, which is what makes a repeated call a no-op.
func computeSupervisorChanges(employees []EmployeeState, targetIDs []int64) []SupervisorChange {
	targets := make(map[int64]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = struct{}{}
	}

	var changes []SupervisorChange
	for _, emp := range employees {
		_, wanted := targets[emp.ID]
		if emp.Supervisor != wanted {
			changes = append(changes, SupervisorChange{
				EmployeeID: emp.ID,
				DNI:        emp.DNI,
				Supervisor: wanted,
			})
		}
	}
	return changes
}

// ReassignSupervisors makes the set of supervising employees of a sector
// equal to targetIDs, keeping each affected account's role in step with the
// flag. Each employee/account pair is its own unit of work: a failure on
// employee N does not revert the ones already written.
func (s *Service) ReassignSupervisors(ctx context.Context, sectorID int64, targetIDs []int64) (*SectorDetail, error) {
	lock := s.sectorLock(sectorID)
	lock.Lock()
	defer lock.Unlock()

	sector, err := s.repo.GetByID(sectorID)
	if err != nil {
		return nil, internal.ErrSectorNotFound.WithCause(err)
	}

	employees, err := s.repo.EmployeesOf(sectorID)
	if err != nil {
		return nil, fmt.Errorf("load sector employees: %w", err)
	}

	changes := computeSupervisorChanges(employees, targetIDs)

	for _, change := range changes {
		if err := s.flags.SetSupervisorFlag(change.EmployeeID, change.Supervisor); err != nil {
			return nil, fmt.Errorf("update supervisor flag for employee %d: %w", change.EmployeeID, err)
		}

		found, err := s.accounts.SetRoleByEmployeeDNI(change.DNI, change.Role().String())
		if err != nil {
			return nil, fmt.Errorf("update account role for dni %d: %w", change.DNI, err)
		}
		if !found {
			// Accepted divergence window: the role catches up when the
			// account is registered.
			s.logger.Info("employee has no account, role change skipped",
				"employee_id", change.EmployeeID, "supervisor", change.Supervisor)
		}
	}

	if len(changes) > 0 {
		s.logger.Info("supervisors reassigned",
			"sector_id", sectorID, "sector", sector.Name, "changes", len(changes))
		if s.bus != nil {
			_ = s.bus.Publish(ctx, events.NewSupervisorsReassigned(sectorID, sector.Name, len(changes)))
		}
	}

	return s.repo.Detail(sectorID)
}

func (s *Service) sectorLock(sectorID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[sectorID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sectorID] = lock
	}
	return lock
}
