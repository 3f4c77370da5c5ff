package db

import (
	"fmt"
	"time"

	"github.com/itallokavin/gestao-aeronaves/internal/config"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

const connectAttempts = 10

// InitSQLX opens the sqlx handle used for reporting queries and health checks.
// Postgres gets its own lib/pq pool; SQLite shares the GORM connection so both
// handles see the same database file.
func InitSQLX(cfg config.DatabaseConfig, orm *gorm.DB) (*sqlx.DB, error) {
	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := orm.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		return sqlx.NewDb(sqlDB, "sqlite3"), nil
	}

	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < connectAttempts; i++ {
		conn, err = sqlx.Connect("postgres", cfg.PostgresDSN())
		if err == nil {
			return conn, nil
		}
		logging.Warn("Postgres not ready, retrying", "attempt", i+1, "error", err.Error())
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres (sqlx): %w", err)
}
