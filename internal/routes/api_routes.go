package routes

import (
	"github.com/itallokavin/gestao-aeronaves/internal/api"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes mounts the aircraft endpoints under /aeronaves
func RegisterAPIRoutes(r chi.Router, h *api.AircraftHandlers) {
	r.Route("/aeronaves", func(aircraft chi.Router) {
		aircraft.Get("/", h.List())
		aircraft.Post("/", h.Create())
		aircraft.Get("/find", h.Search())

		aircraft.Route("/statistics", func(stats chi.Router) {
			stats.Get("/unsold", h.CountUnsold())
			stats.Get("/by-decade", h.ListByDecade())
			stats.Get("/last-week", h.FindLastWeek())
		})

		aircraft.Get("/{id}", h.GetByID())
		aircraft.Put("/{id}", h.Update())
		aircraft.Delete("/{id}", h.Delete())
	})
}
