package attendance

import "time"

type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	CheckedIn  time.Time `json:"checked_in"`
}

type Repository interface {
	EmployeeIDByDNI(dni int) (int64, error)
	HasCheckInOn(employeeID int64, day time.Time) (bool, error)
	Create(a *Attendance) error
	ListByEmployeeID(employeeID int64) ([]Attendance, error)
}
