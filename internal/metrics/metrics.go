package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all Prometheus metrics for the aircraft service
type MetricsRegistry struct {
	Registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RateLimitedTotal     prometheus.Counter

	// Business Metrics
	AircraftMutationsTotal *prometheus.CounterVec
	AppErrorsTotal         *prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics.
// Each registry owns its own prometheus.Registry so it can be created more than once.
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &MetricsRegistry{
		Registry: reg,

		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aeronaves_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "aeronaves_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "aeronaves_http_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),

		// Business Metrics
		AircraftMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_aircraft_mutations_total",
				Help: "Successful aircraft create, update and delete operations",
			},
			[]string{"operation"},
		),
		AppErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_errors_total",
				Help: "Error responses by error kind",
			},
			[]string{"kind"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
