package employee

import "time"

// Employee is the personnel record. Soft-deleted employees are kept but
// excluded from listings.
type Employee struct {
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
	PositionID         int64      `json:"position_id"`
	PositionName       string     `json:"position_name,omitempty"`
	SupervisorID       *int64     `json:"supervisor_id,omitempty"`
}

// HistoryEntry is one span of an employee's stay in a position.
type HistoryEntry struct {
	ID         int64      `json:"id"`
	PositionID int64      `json:"position_id"`
	StartedOn  time.Time  `json:"started_on"`
	EndedOn    *time.Time `json:"ended_on,omitempty"`
}

type Repository interface {
	List() ([]Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(e *Employee) error
	Update(e *Employee) error
	SoftDelete(id int64) error
	PositionExists(positionID int64) (bool, error)

	OpenHistoryEntry(employeeID, positionID int64) error
	CloseCurrentHistoryEntry(employeeID int64) error
	HistoryOf(employeeID int64) ([]HistoryEntry, error)
}

// AccountRegistrar creates the login account when an employee is hired.
type AccountRegistrar interface {
	RegisterAccount(dni int, password string) error
}

// AttendanceReader lists the check-ins consumed by the salary report.
type AttendanceReader interface {
	ListByEmployeeID(employeeID int64) ([]Attendance, error)
}

type Attendance struct {
	ID        int64     `json:"id"`
	CheckedIn time.Time `json:"checked_in"`
}
