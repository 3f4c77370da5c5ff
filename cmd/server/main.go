package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itallokavin/gestao-aeronaves/internal/api"
	"github.com/itallokavin/gestao-aeronaves/internal/config"
	"github.com/itallokavin/gestao-aeronaves/internal/db"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	"github.com/itallokavin/gestao-aeronaves/internal/metrics"
	"github.com/itallokavin/gestao-aeronaves/internal/routes"
)

// @title Gestão de Aeronaves API
// @version 1.0
// @description CRUD, search and statistics for the aircraft catalog.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		logging.Close()
		os.Exit(1)
	}
	logging.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	logging.Info("Gestão de Aeronaves starting up",
		"environment", cfg.AppEnv,
		"driver", cfg.DB.Driver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	orm, err := db.InitORM(cfg.DB)
	if err != nil {
		return err
	}
	ormDB, err := orm.DB()
	if err != nil {
		return fmt.Errorf("failed to get ORM connection pool: %w", err)
	}
	defer ormDB.Close()

	sqlDB, err := db.InitSQLX(cfg.DB, orm)
	if err != nil {
		return err
	}
	if cfg.DB.Driver != config.DriverSQLite {
		// SQLite shares the ORM pool closed above
		defer sqlDB.Close()
	}
	logging.Info("Connected to database (sqlx)", "driver", cfg.DB.Driver)

	deps, err := api.InitDependencies(orm, sqlDB, metrics.NewMetricsRegistry())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.RegisterRoutes(cfg, deps, time.Now()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "addr", srv.Addr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server", "timeout", cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
