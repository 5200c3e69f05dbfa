package sector

import (
	"time"

	"github.com/adminrec/personnel-management/internal/auth"
)

// Sector is the top of the sector → position → employee ownership chain.
type Sector struct {
	ID   int64
	Name string
}

// EmployeeState is the minimal employee slice the reconciliation engine
// reads: identity plus the current supervisor flag.
type EmployeeState struct {
	ID         int64
	DNI        int
	Supervisor bool
}

// SupervisorChange is one decided mutation: set the employee's flag to
// Supervisor and, when an account exists, move its role accordingly.
type SupervisorChange struct {
	EmployeeID int64
	DNI        int
	Supervisor bool
}

// Role returns the account role matching the new supervisor flag.
func (c SupervisorChange) Role() auth.Role {
	if c.Supervisor {
		return auth.RoleSupervisor
	}
	return auth.RoleEmployee
}

// SectorDetail is the detail tree returned to admin callers.
type SectorDetail struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Positions []PositionDetail `json:"positions"`
}

type PositionDetail struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Employees []EmployeeDetail `json:"employees"`
}

type EmployeeDetail struct {
	ID                 int64      `json:"id"`
	LastName           string     `json:"last_name"`
	FirstName          string     `json:"first_name"`
	DNI                int        `json:"dni"`
	Email              string     `json:"email"`
	Address            string     `json:"address,omitempty"`
	BirthDate          *time.Time `json:"birth_date,omitempty"`
	HireDate           *time.Time `json:"hire_date,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	IsSectorSupervisor bool       `json:"is_sector_supervisor"`
	SupervisorID       *int64     `json:"supervisor_id,omitempty"`
}

// Repository is the sector-side persistence surface. EmployeesOf flattens
// every position under the sector into one employee list; each employee
// belongs to exactly one position and each position to exactly one sector,
// so the result has no duplicates.
type Repository interface {
	GetByID(id int64) (*Sector, error)
	ListDetails() ([]SectorDetail, error)
	Detail(id int64) (*SectorDetail, error)
	EmployeesOf(sectorID int64) ([]EmployeeState, error)
	SoftDelete(id int64) error
}

// EmployeeFlagWriter persists a single employee's supervisor flag.
type EmployeeFlagWriter interface {
	SetSupervisorFlag(employeeID int64, supervisor bool) error
}

// AccountRoleWriter moves the role on the account bound to an employee. The
// boolean reports whether an account existed; employees without accounts are
// skipped and their role catches up when the account is created.
type AccountRoleWriter interface {
	SetRoleByEmployeeDNI(dni int, role string) (bool, error)
}
