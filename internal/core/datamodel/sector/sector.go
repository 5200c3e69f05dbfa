package sector

import "time"

type Sector struct {
	ID        int64      `gorm:"primaryKey"`
	Name      string     `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time  `gorm:"column:updated_at;default:now()"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
}

func (Sector) TableName() string {
	return "sectors"
}
