package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	reqctx "github.com/itallokavin/gestao-aeronaves/internal/context"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	"github.com/itallokavin/gestao-aeronaves/internal/metrics"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records count, latency and in-flight gauges per chi route
// pattern and logs one line per completed request.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metricsReg.HTTPRequestsInFlight.Inc()
			defer metricsReg.HTTPRequestsInFlight.Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			// chi fills the pattern in while routing, so read it afterwards
			route := routePattern(r)
			elapsed := time.Since(start)

			metricsReg.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.statusCode)).Inc()
			metricsReg.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

			logging.Info("HTTP request completed",
				"request_id", reqctx.RequestID(r.Context()),
				"method", r.Method,
				"route", route,
				"status_code", rec.statusCode,
				"duration_ms", elapsed.Milliseconds(),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.statusCode = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}
