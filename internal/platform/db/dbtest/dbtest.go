// Package dbtest provides an isolated in-memory database for adapter tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"review_backend/internal/platform/db"
)

// Open returns a migrated in-memory SQLite database private to t.
// The pool is pinned to one connection because every new connection to
// :memory: would see an empty database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), db.GormConfig())
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	return gdb
}
