package position

import (
	"fmt"
	"log/slog"

	"github.com/adminrec/personnel-management/internal"
)

type Service struct {
	repo    Repository
	sectors SectorResolver
	logger  *slog.Logger
}

func NewService(repo Repository, sectors SectorResolver, logger *slog.Logger) *Service {
	return &Service{repo: repo, sectors: sectors, logger: logger}
}

func (s *Service) List() ([]Position, error) {
	return s.repo.List()
}

func (s *Service) Get(id int64) (*Position, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrPositionNotFound.WithCause(err)
	}
	return p, nil
}

func (s *Service) Create(dto PositionDTO) (*Position, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.sectors.SectorExists(dto.SectorID)
	if err != nil {
		return nil, fmt.Errorf("resolve sector: %w", err)
	}
	if !ok {
		return nil, internal.ErrSectorNotFound
	}

	p := &Position{
		Name:          dto.Name,
		SectorID:      dto.SectorID,
		HourlyRate:    dto.HourlyRate,
		MinDailyHours: dto.MinDailyHours,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	s.logger.Info("position created", "position_id", p.ID, "sector_id", p.SectorID)
	return p, nil
}

func (s *Service) Update(id int64, dto PositionDTO) (*Position, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrPositionNotFound.WithCause(err)
	}

	ok, err := s.sectors.SectorExists(dto.SectorID)
	if err != nil {
		return nil, fmt.Errorf("resolve sector: %w", err)
	}
	if !ok {
		return nil, internal.ErrSectorNotFound
	}

	p.Name = dto.Name
	p.SectorID = dto.SectorID
	p.HourlyRate = dto.HourlyRate
	p.MinDailyHours = dto.MinDailyHours

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id int64) (*Position, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrPositionNotFound.WithCause(err)
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return nil, err
	}
	s.logger.Info("position soft-deleted", "position_id", id)
	return p, nil
}
