package logging

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	reqctx "github.com/itallokavin/gestao-aeronaves/internal/context"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	for _, env := range []string{"production", "development", ""} {
		require.NoError(t, Init(env))
		assert.NotNil(t, GetLogger())
	}
}

func TestNewConfigLevels(t *testing.T) {
	assert.False(t, newConfig("production").Level.Enabled(zap.DebugLevel))
	assert.True(t, newConfig("development").Level.Enabled(zap.DebugLevel))
	assert.Equal(t, "json", newConfig("development").Encoding)
}

func TestGetLoggerFallback(t *testing.T) {
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	assert.NotNil(t, GetLogger())
}

func TestForRequestAddsFields(t *testing.T) {
	logs := observe(t)

	req := httptest.NewRequest("GET", "/aeronaves/7", nil)
	req = req.WithContext(reqctx.WithRequestID(req.Context(), "req-1"))

	ForRequest(req).Infow("handled")
	Error("boom", "error", "x")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/aeronaves/7", fields["path"])
	assert.Equal(t, "boom", entries[1].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}
