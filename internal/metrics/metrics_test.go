package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRegistryTwice(t *testing.T) {
	a := NewMetricsRegistry()
	b := NewMetricsRegistry()

	a.AircraftMutationsTotal.WithLabelValues("create").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.AircraftMutationsTotal.WithLabelValues("create")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.AircraftMutationsTotal.WithLabelValues("create")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetricsRegistry()
	m.HTTPRequestsTotal.WithLabelValues("/aeronaves", "GET", "200").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "aeronaves_http_requests_total"))
}
