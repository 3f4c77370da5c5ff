package logging

import (
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	reqctx "github.com/itallokavin/gestao-aeronaves/internal/context"
)

const serviceName = "gestao-aeronaves"

var (
	mu           sync.RWMutex
	globalLogger *zap.SugaredLogger
)

func newConfig(appEnv string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	return cfg
}

// Init builds the process-wide JSON logger. "production" logs at info and
// above with sampling; every other environment logs at debug.
func Init(appEnv string) error {
	logger, err := newConfig(appEnv).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger.Sugar().With("service", serviceName, "environment", appEnv))
	return nil
}

// GetLogger returns the global logger, building a production one on first use
// when Init was never called.
func GetLogger() *zap.SugaredLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		logger, err := zap.NewProduction()
		if err != nil {
			logger = zap.NewNop()
		}
		globalLogger = logger.Sugar().With("service", serviceName)
	}
	return globalLogger
}

// SetLogger replaces the global logger
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

// Close flushes buffered entries
func Close() error {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

func Info(message string, fields ...interface{}) {
	GetLogger().Infow(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	GetLogger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	GetLogger().Errorw(message, fields...)
}

// ForRequest returns a logger tagged with the request id, method and path of r
func ForRequest(r *http.Request) *zap.SugaredLogger {
	return GetLogger().With(
		"request_id", reqctx.RequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)
}
