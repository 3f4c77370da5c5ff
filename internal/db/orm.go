package db

import (
	"fmt"

	"github.com/itallokavin/gestao-aeronaves/internal/config"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	gormModels "github.com/itallokavin/gestao-aeronaves/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitORM opens the GORM handle for the configured driver and migrates the schema.
func InitORM(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.PostgresDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logging.Info("Connected via GORM", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates or updates the aeronave table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&gormModels.Aircraft{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
