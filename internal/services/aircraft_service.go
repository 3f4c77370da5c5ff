package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/db/repositories"
	"github.com/itallokavin/gestao-aeronaves/internal/mapper"
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos"
	gormModels "github.com/itallokavin/gestao-aeronaves/internal/models/gorm"
)

// AircraftRepository is the storage the service needs
type AircraftRepository interface {
	Create(ctx context.Context, aircraft *gormModels.Aircraft) error
	Update(ctx context.Context, aircraft *gormModels.Aircraft) error
	FindByID(ctx context.Context, id int64) (*gormModels.Aircraft, error)
	FindAll(ctx context.Context) ([]gormModels.Aircraft, error)
	FindByTerm(ctx context.Context, term string) ([]gormModels.Aircraft, error)
	FindCreatedAfter(ctx context.Context, since time.Time) ([]gormModels.Aircraft, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// AircraftStatsRepository serves the aggregate statistics
type AircraftStatsRepository interface {
	CountUnsold(ctx context.Context) (int64, error)
	CountByDecade(ctx context.Context) (map[int]int64, error)
}

// AircraftService owns the aircraft business rules
type AircraftService struct {
	repo  AircraftRepository
	stats AircraftStatsRepository
	now   func() time.Time
}

func NewAircraftService(repo AircraftRepository, stats AircraftStatsRepository) *AircraftService {
	return &AircraftService{
		repo:  repo,
		stats: stats,
		now:   time.Now,
	}
}

// WithClock replaces the time source used for the year rule and timestamps
func (s *AircraftService) WithClock(now func() time.Time) *AircraftService {
	s.now = now
	return s
}

func (s *AircraftService) List(ctx context.Context) ([]dtos.Aircraft, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOs(list), nil
}

// Search falls back to List when term is blank
func (s *AircraftService) Search(ctx context.Context, term string) ([]dtos.Aircraft, error) {
	if strings.TrimSpace(term) == "" {
		return s.List(ctx)
	}

	list, err := s.repo.FindByTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOs(list), nil
}

func (s *AircraftService) GetByID(ctx context.Context, id int64) (*dtos.Aircraft, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAircraftNotFound) {
			return nil, common.NewNotFoundError(constants.MsgAircraftNotFound, id)
		}
		return nil, err
	}

	dto := mapper.ToDTO(*entity)
	return &dto, nil
}

// Create stores a new aircraft. Any id or timestamps in dto are discarded.
func (s *AircraftService) Create(ctx context.Context, dto dtos.Aircraft) (*dtos.Aircraft, error) {
	if err := s.validateYear(dto.Year); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entity := mapper.ToEntity(dto)
	entity.ID = 0
	entity.Created = now
	entity.Updated = now

	if err := s.repo.Create(ctx, &entity); err != nil {
		return nil, err
	}

	saved := mapper.ToDTO(entity)
	return &saved, nil
}

// Update replaces every field except id and created. Fields missing from dto
// are stored as their zero value.
func (s *AircraftService) Update(ctx context.Context, id int64, dto dtos.Aircraft) (*dtos.Aircraft, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFoundError(constants.MsgUpdateNotFound, id)
	}

	if err := s.validateYear(dto.Year); err != nil {
		return nil, err
	}

	entity := mapper.ToEntity(dto)
	entity.ID = id
	entity.Updated = s.now().UTC()

	if err := s.repo.Update(ctx, &entity); err != nil {
		if errors.Is(err, repositories.ErrAircraftNotFound) {
			return nil, common.NewNotFoundError(constants.MsgUpdateNotFound, id)
		}
		return nil, err
	}

	updated := mapper.ToDTO(entity)
	return &updated, nil
}

func (s *AircraftService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFoundError(constants.MsgDeletionNotFound, id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAircraftNotFound) {
			return common.NewNotFoundError(constants.MsgDeletionNotFound, id)
		}
		return err
	}
	return nil
}

func (s *AircraftService) CountUnsold(ctx context.Context) (int64, error) {
	return s.stats.CountUnsold(ctx)
}

// ListByDecade counts aircraft per (year/10)*10 bucket
func (s *AircraftService) ListByDecade(ctx context.Context) (map[int]int64, error) {
	return s.stats.CountByDecade(ctx)
}

// FindLastWeek returns aircraft created strictly after now minus seven days
func (s *AircraftService) FindLastWeek(ctx context.Context) ([]dtos.Aircraft, error) {
	since := s.now().UTC().Add(-constants.LastWeekWindow)

	list, err := s.repo.FindCreatedAfter(ctx, since)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOs(list), nil
}

// validateYear enforces year <= current year; there is no lower bound.
// A nil year is left to request validation.
func (s *AircraftService) validateYear(year *int) error {
	if year == nil {
		return nil
	}
	if current := s.now().Year(); *year > current {
		return common.NewInvalidArgumentError(constants.MsgYearInFuture)
	}
	return nil
}
