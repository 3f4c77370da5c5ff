package repositories

import (
	"context"
	"fmt"

	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// AircraftStatsRepository runs the aggregate statistics as plain SQL through sqlx
type AircraftStatsRepository struct {
	db *sqlx.DB
}

func NewAircraftStatsRepository(db *sqlx.DB) *AircraftStatsRepository {
	return &AircraftStatsRepository{db}
}

func (r *AircraftStatsRepository) CountUnsold(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, constants.CountUnsoldAircraft); err != nil {
		return 0, fmt.Errorf("failed to count unsold aircraft: %w", err)
	}
	return count, nil
}

func (r *AircraftStatsRepository) CountByDecade(ctx context.Context) (map[int]int64, error) {
	var rows []entities.DecadeCount

	if err := r.db.SelectContext(ctx, &rows, constants.CountAircraftByDecade); err != nil {
		return nil, fmt.Errorf("failed to count aircraft by decade: %w", err)
	}
	return decadeMap(rows), nil
}

// decadeMap folds scanned rows into decade -> count
func decadeMap(rows []entities.DecadeCount) map[int]int64 {
	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Decade] += row.Total
	}
	return out
}
