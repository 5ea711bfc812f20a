package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunSQLite(context.Background(), db))
	return db
}

func TestSQLiteConfigSource_EmptyTableYieldsEmptyMap(t *testing.T) {
	source := NewSQLiteConfigSource(setupConfigTestDB(t))

	overrides, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestSQLiteConfigSource_FetchReturnsStoredOverrides(t *testing.T) {
	db := setupConfigTestDB(t)
	source := NewSQLiteConfigSource(db)

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.Exec(`INSERT INTO feature_overrides (feature_id, enabled, updated_at) VALUES
		('dark-mode', 0, ?),
		('surprise-me', 1, ?)`, now, now)
	require.NoError(t, err)

	overrides, err := source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"dark-mode":   false,
		"surprise-me": true,
	}, overrides)
}
