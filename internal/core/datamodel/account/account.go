package account

import "time"

// Account is the authentication record, exactly one per employee.
type Account struct {
	ID           int64      `gorm:"primaryKey"`
	EmployeeID   int64      `gorm:"column:employee_id;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"`
}

func (Account) TableName() string {
	return "accounts"
}
