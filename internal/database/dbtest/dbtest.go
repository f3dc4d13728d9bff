// Package dbtest provides migrated throwaway databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fileuploader/internal/config"
	"fileuploader/internal/database"
	"fileuploader/internal/database/migration"
	"fileuploader/internal/logging"
)

// NewSQLite opens a file-backed SQLite database in t.TempDir, applies the schema
// and closes it when the test ends.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.NewSQLite(config.DatabaseConfig{
		Driver:     config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.EnsureMigrated(context.Background(), db, database.DialectSQLite, logging.Discard()))
	return db
}
