package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"learn2drive/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "github.com/sijms/go-ora/v2"     // driver: oracle
	_ "modernc.org/sqlite"             // driver: sqlite
)

func init() {
	// go-ora binds by position with :name placeholders.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// Open connects to the configured database and verifies the connection.
// Repositories write "?" placeholders and rely on db.Rebind for each driver.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	dsn := cfg.GetDSN()
	driver := cfg.DB.Driver

	switch driver {
	case config.DriverSQLite:
		if !strings.Contains(dsn, "_pragma") {
			dsn = "file:" + dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		}
	case config.DriverPgx, config.DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == config.DriverOracle {
		// Oracle reports unquoted identifiers in upper case.
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	}
	if driver == config.DriverSQLite {
		// One writer at a time keeps sqlite from returning SQLITE_BUSY under load.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	log.Info("Connected to database", zap.String("driver", driver))
	return db, nil
}
