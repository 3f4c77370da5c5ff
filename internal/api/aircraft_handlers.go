package api

import (
	"context"
	"net/http"

	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/metrics"
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos"
)

// AircraftService is the business layer the handlers delegate to
type AircraftService interface {
	List(ctx context.Context) ([]dtos.Aircraft, error)
	Search(ctx context.Context, term string) ([]dtos.Aircraft, error)
	GetByID(ctx context.Context, id int64) (*dtos.Aircraft, error)
	Create(ctx context.Context, dto dtos.Aircraft) (*dtos.Aircraft, error)
	Update(ctx context.Context, id int64, dto dtos.Aircraft) (*dtos.Aircraft, error)
	Delete(ctx context.Context, id int64) error
	CountUnsold(ctx context.Context) (int64, error)
	ListByDecade(ctx context.Context) (map[int]int64, error)
	FindLastWeek(ctx context.Context) ([]dtos.Aircraft, error)
}

type AircraftHandlers struct {
	svc     AircraftService
	metrics *metrics.MetricsRegistry
}

func NewAircraftHandlers(svc AircraftService, metricsReg *metrics.MetricsRegistry) *AircraftHandlers {
	return &AircraftHandlers{svc: svc, metrics: metricsReg}
}

// fail counts the error by kind and writes the standard error body
func (h *AircraftHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if h.metrics != nil {
		h.metrics.AppErrorsTotal.WithLabelValues(common.KindOf(err).String()).Inc()
	}
	common.RespondAppError(w, r, err)
}

func (h *AircraftHandlers) mutated(operation string) {
	if h.metrics != nil {
		h.metrics.AircraftMutationsTotal.WithLabelValues(operation).Inc()
	}
}

// List handles GET /aeronaves
//
// @Summary List aircraft
// @Tags Aircraft
// @Success 200 {array} dtos.Aircraft
// @Router /aeronaves [get]
func (h *AircraftHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.svc.List(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, orEmpty(list))
	}
}

// Search handles GET /aeronaves/find?term=
//
// @Summary Search aircraft by name, description or brand
// @Tags Aircraft
// @Param term query string false "Search term"
// @Success 200 {array} dtos.Aircraft
// @Router /aeronaves/find [get]
func (h *AircraftHandlers) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.svc.Search(r.Context(), r.URL.Query().Get("term"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, orEmpty(list))
	}
}

// GetByID handles GET /aeronaves/{id}
//
// @Summary Get an aircraft
// @Tags Aircraft
// @Param id path int true "Aircraft ID"
// @Success 200 {object} dtos.Aircraft
// @Failure 404 {object} responses.ErrorResponse
// @Router /aeronaves/{id} [get]
func (h *AircraftHandlers) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		aircraft, err := h.svc.GetByID(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, aircraft)
	}
}

// Create handles POST /aeronaves
//
// @Summary Create an aircraft
// @Tags Aircraft
// @Param body body dtos.Aircraft true "Aircraft"
// @Success 201 {object} dtos.Aircraft
// @Failure 400 {object} responses.ErrorResponse
// @Router /aeronaves [post]
func (h *AircraftHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := decodeAircraft(w, r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		created, err := h.svc.Create(r.Context(), dto)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.mutated("create")
		common.RespondJSON(w, http.StatusCreated, created)
	}
}

// Update handles PUT /aeronaves/{id}
//
// @Summary Replace an aircraft
// @Tags Aircraft
// @Param id path int true "Aircraft ID"
// @Param body body dtos.Aircraft true "Aircraft"
// @Success 200 {object} dtos.Aircraft
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /aeronaves/{id} [put]
func (h *AircraftHandlers) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		dto, err := decodeAircraft(w, r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		updated, err := h.svc.Update(r.Context(), id, dto)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.mutated("update")
		common.RespondJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /aeronaves/{id}
//
// @Summary Delete an aircraft
// @Tags Aircraft
// @Param id path int true "Aircraft ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Router /aeronaves/{id} [delete]
func (h *AircraftHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		if err := h.svc.Delete(r.Context(), id); err != nil {
			h.fail(w, r, err)
			return
		}

		h.mutated("delete")
		common.RespondNoContent(w)
	}
}

// CountUnsold handles GET /aeronaves/statistics/unsold
func (h *AircraftHandlers) CountUnsold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.svc.CountUnsold(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, count)
	}
}

// ListByDecade handles GET /aeronaves/statistics/by-decade
func (h *AircraftHandlers) ListByDecade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byDecade, err := h.svc.ListByDecade(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, byDecade)
	}
}

// FindLastWeek handles GET /aeronaves/statistics/last-week
func (h *AircraftHandlers) FindLastWeek() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.svc.FindLastWeek(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, orEmpty(list))
	}
}

func orEmpty(list []dtos.Aircraft) []dtos.Aircraft {
	if list == nil {
		return []dtos.Aircraft{}
	}
	return list
}
