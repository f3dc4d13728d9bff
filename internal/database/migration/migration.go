package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"fileuploader/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_cars",
		SQL: `CREATE TABLE IF NOT EXISTS cars (
  id    BIGSERIAL PRIMARY KEY,
  model TEXT      NOT NULL CHECK (model <> '')
);`,
	},
	{
		Name: "create_table_contents",
		SQL: `CREATE TABLE IF NOT EXISTS contents (
  id                BIGSERIAL PRIMARY KEY,
  data              BYTEA,
  data_content_type TEXT      NOT NULL,
  data_key          TEXT      UNIQUE,
  CHECK (data IS NOT NULL OR data_key IS NOT NULL)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id         BIGSERIAL PRIMARY KEY,
  title      TEXT      NOT NULL CHECK (title <> ''),
  size       BIGINT    NOT NULL CHECK (size >= 0),
  mime_type  TEXT,
  content_id BIGINT    UNIQUE REFERENCES contents (id) ON DELETE SET NULL,
  car_id     BIGINT    NOT NULL REFERENCES cars (id) ON DELETE RESTRICT
);`,
	},
	{
		Name: "create_index_documents_car_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_car_id ON documents (car_id);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_cars",
		SQL: `CREATE TABLE IF NOT EXISTS cars (
  id    INTEGER PRIMARY KEY AUTOINCREMENT,
  model TEXT    NOT NULL CHECK (model <> '')
);`,
	},
	{
		Name: "create_table_contents",
		SQL: `CREATE TABLE IF NOT EXISTS contents (
  id                INTEGER PRIMARY KEY AUTOINCREMENT,
  data              BLOB,
  data_content_type TEXT    NOT NULL,
  data_key          TEXT    UNIQUE,
  CHECK (data IS NOT NULL OR data_key IS NOT NULL)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  title      TEXT    NOT NULL CHECK (title <> ''),
  size       INTEGER NOT NULL CHECK (size >= 0),
  mime_type  TEXT,
  content_id INTEGER UNIQUE REFERENCES contents (id) ON DELETE SET NULL,
  car_id     INTEGER NOT NULL REFERENCES cars (id) ON DELETE RESTRICT
);`,
	},
	{
		Name: "create_index_documents_car_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_car_id ON documents (car_id);`,
	},
}

var sentinelQueries = map[database.Dialect]string{
	database.DialectPostgres: "SELECT to_regclass('public.documents') IS NOT NULL",
	database.DialectSQLite:   "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'documents')",
}

func stepsFor(dialect database.Dialect) ([]migrationStep, error) {
	switch dialect {
	case database.DialectPostgres:
		return postgresSteps, nil
	case database.DialectSQLite:
		return sqliteSteps, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

// EnsureMigrated checks if the 'documents' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect database.Dialect, log *slog.Logger) error {
	start := time.Now()
	log = log.With("component", "database", "dialect", string(dialect))

	steps, err := stepsFor(dialect)
	if err != nil {
		return err
	}

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQueries[dialect]).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
