package position

type PositionDTO struct {
	Name          string  `json:"name"`
	SectorID      int64   `json:"sector_id"`
	HourlyRate    float64 `json:"hourly_rate"`
	MinDailyHours float64 `json:"min_daily_hours"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d PositionDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if len(d.Name) > 30 {
		return ValidationError{Msg: "name must be at most 30 characters"}
	}
	if d.SectorID <= 0 {
		return ValidationError{Msg: "sector_id is required"}
	}
	if d.HourlyRate <= 0 {
		return ValidationError{Msg: "hourly_rate must be positive"}
	}
	return nil
}
