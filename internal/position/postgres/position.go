package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	posDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/position"
	secDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/sector"
	"github.com/adminrec/personnel-management/internal/position"
)

var ErrPositionNotFound = errors.New("position not found")

type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) List() ([]position.Position, error) {
	var rows []struct {
		posDatamodel.Position
		SectorName string
	}
	err := r.db.Model(&posDatamodel.Position{}).
		Select("positions.*, sectors.name AS sector_name").
		Joins("JOIN sectors ON sectors.id = positions.sector_id").
		Where("positions.deleted_at IS NULL").
		Order("positions.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]position.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row.Position, row.SectorName))
	}
	return out, nil
}

func (r *PositionRepository) GetByID(id int64) (*position.Position, error) {
	var pos posDatamodel.Position
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&pos).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}

	var sectorName string
	r.db.Model(&secDatamodel.Sector{}).Select("name").Where("id = ?", pos.SectorID).Scan(&sectorName)

	p := toDomain(pos, sectorName)
	return &p, nil
}

func (r *PositionRepository) Create(p *position.Position) error {
	record := posDatamodel.Position{
		Name:          p.Name,
		SectorID:      p.SectorID,
		HourlyRate:    p.HourlyRate,
		MinDailyHours: p.MinDailyHours,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return err
	}
	p.ID = record.ID
	return nil
}

func (r *PositionRepository) Update(p *position.Position) error {
	return r.db.Model(&posDatamodel.Position{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":            p.Name,
			"sector_id":       p.SectorID,
			"hourly_rate":     p.HourlyRate,
			"min_daily_hours": p.MinDailyHours,
			"updated_at":      time.Now(),
		}).Error
}

func (r *PositionRepository) SoftDelete(id int64) error {
	return r.db.Model(&posDatamodel.Position{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"updated_at": time.Now(),
		}).Error
}

// SectorExists implements position.SectorResolver.
func (r *PositionRepository) SectorExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&secDatamodel.Sector{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

func toDomain(pos posDatamodel.Position, sectorName string) position.Position {
	return position.Position{
		ID:            pos.ID,
		Name:          pos.Name,
		SectorID:      pos.SectorID,
		SectorName:    sectorName,
		HourlyRate:    pos.HourlyRate,
		MinDailyHours: pos.MinDailyHours,
	}
}
