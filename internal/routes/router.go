package routes

import (
	"net/http"
	"time"

	"github.com/itallokavin/gestao-aeronaves/internal/api"
	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/config"
	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	"github.com/itallokavin/gestao-aeronaves/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the chi router with global middleware, health,
// metrics and the aircraft API.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constants.RequestIDHeader},
		ExposedHeaders:   []string{constants.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, deps.Metrics).Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, http.StatusNotFound, constants.ErrTitleNotFound, constants.MsgRouteNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, http.StatusMethodNotAllowed, constants.ErrTitleMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
	})

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(deps.SQL, cfg.DB.Driver, upSince))
	r.Handle("/metrics", deps.Metrics.Handler())

	RegisterAPIRoutes(r, api.NewAircraftHandlers(deps.Services.Aircraft, deps.Metrics))

	return r
}
