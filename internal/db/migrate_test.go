package db_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/db"
)

func openMemory(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestMigrate_CreatesSchema(t *testing.T) {
	sqlDB := openMemory(t)

	require.NoError(t, db.Migrate(context.Background(), sqlDB))

	for _, table := range []string{"draws", "played_rows", "settings"} {
		var name string
		err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}

	version, err := db.SchemaVersion(sqlDB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestMigrate_Idempotent(t *testing.T) {
	sqlDB := openMemory(t)

	require.NoError(t, db.Migrate(context.Background(), sqlDB))
	require.NoError(t, db.Migrate(context.Background(), sqlDB))

	_, err := sqlDB.Exec(`INSERT INTO settings (key, value) VALUES ('tolerance_days', '2')`)
	assert.NoError(t, err, "database must stay open after migrating")
}

func TestSchemaVersion_Fresh(t *testing.T) {
	sqlDB := openMemory(t)

	version, err := db.SchemaVersion(sqlDB)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
}
