package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gormModels "github.com/itallokavin/gestao-aeronaves/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrAircraftNotFound is returned when no row matches the requested id
var ErrAircraftNotFound = errors.New("aircraft not found")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Create inserts a new record; the database assigns the id
func (r *AircraftRepository) Create(ctx context.Context, aircraft *gormModels.Aircraft) error {
	if err := r.db.WithContext(ctx).Create(aircraft).Error; err != nil {
		return fmt.Errorf("failed to create aircraft: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the row identified by aircraft.ID
// and reloads it. created is create-only and never written here.
func (r *AircraftRepository) Update(ctx context.Context, aircraft *gormModels.Aircraft) error {
	res := r.db.WithContext(ctx).
		Model(aircraft).
		Select("*").
		Updates(aircraft)

	if res.Error != nil {
		return fmt.Errorf("failed to update aircraft %d: %w", aircraft.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %d: %w", aircraft.ID, ErrAircraftNotFound)
	}

	if err := r.db.WithContext(ctx).First(aircraft, aircraft.ID).Error; err != nil {
		return fmt.Errorf("failed to reload aircraft %d: %w", aircraft.ID, err)
	}
	return nil
}

// FindByID fetches a single aircraft
func (r *AircraftRepository) FindByID(ctx context.Context, id int64) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).First(&aircraft, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id %d: %w", id, ErrAircraftNotFound)
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

func (r *AircraftRepository) FindAll(ctx context.Context) ([]gormModels.Aircraft, error) {
	var list []gormModels.Aircraft

	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}
	return list, nil
}

// FindByTerm matches term case-insensitively against name, description and brand
func (r *AircraftRepository) FindByTerm(ctx context.Context, term string) ([]gormModels.Aircraft, error) {
	var list []gormModels.Aircraft
	pattern := "%" + likeEscaper.Replace(term) + "%"

	err := r.db.WithContext(ctx).
		Where(`UPPER(nome) LIKE UPPER(?) ESCAPE '\' OR UPPER(descricao) LIKE UPPER(?) ESCAPE '\' OR UPPER(marca) LIKE UPPER(?) ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("id").
		Find(&list).Error

	if err != nil {
		return nil, fmt.Errorf("failed to search aircraft: %w", err)
	}
	return list, nil
}

func (r *AircraftRepository) FindByBrand(ctx context.Context, brand string) ([]gormModels.Aircraft, error) {
	var list []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("marca = ?", brand).
		Order("id").
		Find(&list).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft by brand: %w", err)
	}
	return list, nil
}

// FindCreatedAfter returns records created strictly after since
func (r *AircraftRepository) FindCreatedAfter(ctx context.Context, since time.Time) ([]gormModels.Aircraft, error) {
	var list []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("created > ?", since).
		Order("id").
		Find(&list).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent aircraft: %w", err)
	}
	return list, nil
}

func (r *AircraftRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check aircraft %d: %w", id, err)
	}
	return count > 0, nil
}

// DeleteByID hard-deletes the row
func (r *AircraftRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Aircraft{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete aircraft %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %d: %w", id, ErrAircraftNotFound)
	}
	return nil
}
