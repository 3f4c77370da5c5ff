package api

import (
	"fmt"

	"github.com/itallokavin/gestao-aeronaves/internal/db/repositories"
	"github.com/itallokavin/gestao-aeronaves/internal/metrics"
	"github.com/itallokavin/gestao-aeronaves/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Aircraft      *repositories.AircraftRepository
	AircraftStats *repositories.AircraftStatsRepository
}

type Services struct {
	Aircraft *services.AircraftService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	SQL      *sqlx.DB
}

// InitDependencies wires repositories and services over the two DB handles.
// Writes and lookups go through GORM; the aggregate statistics through sqlx.
func InitDependencies(orm *gorm.DB, sqlDB *sqlx.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	if orm == nil || sqlDB == nil {
		return nil, fmt.Errorf("database handles are required")
	}
	if metricsReg == nil {
		metricsReg = metrics.NewMetricsRegistry()
	}

	repos := &Repositories{
		Aircraft:      repositories.NewAircraftRepository(orm),
		AircraftStats: repositories.NewAircraftStatsRepository(sqlDB),
	}

	svcs := &Services{
		Aircraft: services.NewAircraftService(repos.Aircraft, repos.AircraftStats),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		SQL:      sqlDB,
	}, nil
}
