package api

import (
	"context"
	"net/http"
	"time"

	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	"github.com/itallokavin/gestao-aeronaves/internal/models/entities"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

func probe(ctx context.Context, p Pinger) entities.ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, constants.HealthProbeTimeout)
	defer cancel()

	start := time.Now()
	err := p.PingContext(ctx)
	result := entities.ComponentHealth{
		Status:    constants.HealthUp,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		result.Status = constants.HealthDown
		result.Details = err.Error()
	}
	return result
}

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server and its database are reachable.
// @Tags Misc
// @Success 200 {object} entities.HealthReport
// @Failure 503 {object} entities.HealthReport
// @Router /healthCheck [get]
func HealthCheckHandler(db Pinger, dbName string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := entities.HealthReport{
			Status:     constants.HealthUp,
			Components: map[string]entities.ComponentHealth{dbName: probe(r.Context(), db)},
			UpSince:    upSince,
			Uptime:     time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		for name, c := range report.Components {
			if c.Status != constants.HealthUp {
				logging.Warn("Health probe failed", "component", name, "details", c.Details)
				report.Status = constants.HealthDown
				code = http.StatusServiceUnavailable
			}
		}
		common.RespondJSON(w, code, report)
	}
}
