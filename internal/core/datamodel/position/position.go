package position

import "time"

type Position struct {
	ID            int64      `gorm:"primaryKey"`
	Name          string     `gorm:"column:name;not null"`
	SectorID      int64      `gorm:"column:sector_id;not null;index"`
	HourlyRate    float64    `gorm:"column:hourly_rate;not null"`
	MinDailyHours float64    `gorm:"column:min_daily_hours"`
	CreatedAt     time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;default:now()"`
	DeletedAt     *time.Time `gorm:"column:deleted_at"`
}

func (Position) TableName() string {
	return "positions"
}
