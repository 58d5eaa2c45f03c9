package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"learn2drive/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations brings the schema up to date for the connected driver.
// sqlite and postgres go through golang-migrate; oracle executes the
// embedded scripts statement by statement.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, log *zap.Logger) error {
	switch driver {
	case config.DriverSQLite:
		drv, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite migration driver: %w", err)
		}
		return migrateUp("sqlite", drv, log)
	case config.DriverPgx:
		drv, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
		if err != nil {
			return fmt.Errorf("could not create postgres migration driver: %w", err)
		}
		return migrateUp("postgres", drv, log)
	case config.DriverOracle:
		return runOracleMigrations(ctx, db, log)
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}
}

func migrateUp(dir string, drv migratedb.Driver, log *zap.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/"+dir)
	if err != nil {
		return fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dir, drv)
	if err != nil {
		return fmt.Errorf("could not initialise migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info("Migrations completed successfully", zap.String("dialect", dir), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// runOracleMigrations executes every *.up.sql file in name order. Objects that
// already exist (ORA-00955) are skipped so the run is repeatable.
func runOracleMigrations(ctx context.Context, db *sqlx.DB, log *zap.Logger) error {
	files, err := fs.Glob(migrationsFS, "migrations/oracle/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if strings.Contains(err.Error(), "ORA-00955") {
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", file, err)
			}
		}
		log.Info("Executed migration", zap.String("file", file))
	}

	log.Info("Migrations completed successfully", zap.String("dialect", "oracle"))
	return nil
}

// SplitStatements splits a script on ";" line endings and drops comments and blanks.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			stmts = append(stmts, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
