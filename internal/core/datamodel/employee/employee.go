package employee

import "time"

type Employee struct {
	ID                 int64      `gorm:"primaryKey"`
	IsSectorSupervisor bool       `gorm:"column:is_sector_supervisor;not null"`
	LastName           string     `gorm:"column:last_name;size:50;not null"`
	FirstName          string     `gorm:"column:first_name;size:50;not null"`
	DNI                int        `gorm:"column:dni;uniqueIndex;not null"`
	Email              string     `gorm:"column:email;not null"`
	Address            string     `gorm:"column:address;size:45"`
	BirthDate          *time.Time `gorm:"column:birth_date"`
	HireDate           *time.Time `gorm:"column:hire_date"`
	Phone              string     `gorm:"column:phone;size:12"`
	PositionID         int64      `gorm:"column:position_id;not null;index"`
	SupervisorID       *int64     `gorm:"column:supervisor_id"`
	CreatedAt          time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;default:now()"`
	DeletedAt          *time.Time `gorm:"column:deleted_at"`
}

func (Employee) TableName() string {
	return "employees"
}
