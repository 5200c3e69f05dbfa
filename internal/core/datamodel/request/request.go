package request

import "time"

// Request is a leave/permission request raised by an employee.
type Request struct {
	ID           int64      `gorm:"primaryKey"`
	RequestType  string     `gorm:"column:request_type;not null"`
	DurationDays int        `gorm:"column:duration_days;not null"`
	Reason       string     `gorm:"column:reason;not null"`
	Status       string     `gorm:"column:status;not null"`
	EmployeeID   int64      `gorm:"column:employee_id;not null;index"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"`
}

func (Request) TableName() string {
	return "requests"
}
