package position

// Position is a job position owned by a sector; employees hang off it.
type Position struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SectorID      int64   `json:"sector_id"`
	SectorName    string  `json:"sector_name,omitempty"`
	HourlyRate    float64 `json:"hourly_rate"`
	MinDailyHours float64 `json:"min_daily_hours,omitempty"`
}

type Repository interface {
	List() ([]Position, error)
	GetByID(id int64) (*Position, error)
	Create(p *Position) error
	Update(p *Position) error
	SoftDelete(id int64) error
}

// SectorResolver checks the sector a position is being attached to exists.
type SectorResolver interface {
	SectorExists(id int64) (bool, error)
}
