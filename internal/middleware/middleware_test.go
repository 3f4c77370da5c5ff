package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	reqctx "github.com/itallokavin/gestao-aeronaves/internal/context"
	"github.com/itallokavin/gestao-aeronaves/internal/metrics"
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos/responses"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqctx.RequestID(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constants.RequestIDHeader))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(constants.RequestIDHeader))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.RequestIDHeader, strings.Repeat("x", 500))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Len(t, seen, 36)
	})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.NewMetricsRegistry()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/aeronaves/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/aeronaves/1", "/aeronaves/2"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("/aeronaves/{id}", http.MethodGet, "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	m := metrics.NewMetricsRegistry()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/aeronaves", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestRateLimiter(t *testing.T) {
	m := metrics.NewMetricsRegistry()
	handler := NewRateLimiter(1, 2, m).Middleware(http.HandlerFunc(okHandler))

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/aeronaves", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))

	// separate bucket per client
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))

	// loopback is never limited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, call("127.0.0.1:5000"))
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitedTotal))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, nil)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now
	handler := rl.Middleware(http.HandlerFunc(okHandler))

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/aeronaves", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))
	assert.Equal(t, 2, rl.trackedClients())

	// 10.0.0.2 stays active, 10.0.0.1 goes idle
	now = now.Add(2 * time.Minute)
	call("10.0.0.2:5000")
	now = now.Add(2 * time.Minute)
	call("10.0.0.3:5000")

	assert.Equal(t, 2, rl.trackedClients())

	// an evicted client starts again with a full bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	handler := NewRateLimiter(0, 0, nil).Middleware(http.HandlerFunc(okHandler))

	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/aeronaves", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/aeronaves", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body responses.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, constants.ErrTitleInternal, body.Error)
	assert.NotContains(t, body.Message, "boom")
}
