package history

import "time"

// PositionHistory records the span an employee spent in a position. EndedOn
// stays nil while the assignment is current.
type PositionHistory struct {
	ID         int64      `gorm:"primaryKey"`
	EmployeeID int64      `gorm:"column:employee_id;not null;index"`
	PositionID int64      `gorm:"column:position_id;not null;index"`
	StartedOn  time.Time  `gorm:"column:started_on;not null"`
	EndedOn    *time.Time `gorm:"column:ended_on"`
}

func (PositionHistory) TableName() string {
	return "position_history"
}
