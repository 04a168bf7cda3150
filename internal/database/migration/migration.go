package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"newsletterapi/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_newsletters",
		SQL: `CREATE TABLE IF NOT EXISTS newsletters (
  id         INTEGER  PRIMARY KEY AUTOINCREMENT,
  title      TEXT     NOT NULL,
  body       TEXT     NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		Name: "create_index_newsletters_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_newsletters_created_at ON newsletters (created_at);`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_newsletters",
		SQL: `CREATE TABLE IF NOT EXISTS newsletters (
  id         BIGSERIAL   PRIMARY KEY,
  title      TEXT        NOT NULL,
  body       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_newsletters_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_newsletters_created_at ON newsletters (created_at);`,
	},
}

// dialect bundles the sentinel query and schema steps for one driver.
type dialect struct {
	sentinel string
	steps    []migrationStep
}

var dialects = map[string]dialect{
	config.DriverSQLite: {
		sentinel: "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'newsletters'",
		steps:    sqliteSteps,
	},
	config.DriverPostgres: {
		sentinel: "SELECT to_regclass('public.newsletters') IS NOT NULL",
		steps:    postgresSteps,
	},
}

// EnsureMigrated checks if the 'newsletters' table exists and runs migrations if it doesn't.
// driver is one of config.DriverSQLite or config.DriverPostgres.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	logger = logger.With("component", "database", "db_driver", driver)
	start := time.Now()

	logger.Info("db_migration_check", "status", "starting")

	var exists bool
	if err := db.QueryRowContext(ctx, d.sentinel).Scan(&exists); err != nil {
		logger.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	logger.Info("db_migration_start", "status", "in_progress")

	for _, step := range d.steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
