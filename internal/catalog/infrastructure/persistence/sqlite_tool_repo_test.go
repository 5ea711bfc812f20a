package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/creatorhub/creatorhub/internal/catalog/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunSQLite(context.Background(), db))
	return db
}

func TestSQLiteToolRepository_SaveAndGet(t *testing.T) {
	repo := NewSQLiteToolRepository(setupTestDB(t))
	ctx := context.Background()

	tool := &domain.Tool{
		ID:          "t1",
		Name:        "ScriptForge",
		Company:     "Forge Labs",
		Description: "Copywriting assistant",
		Category:    "Text & Writing",
		Pricing:     "FREEMIUM",
		URL:         "https://scriptforge.example",
		Tags:        []string{"writing", "marketing"},
	}
	require.NoError(t, repo.Save(ctx, tool))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ScriptForge", got.Name)
	assert.Equal(t, []string{"writing", "marketing"}, got.Tags)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteToolRepository_GetMissing(t *testing.T) {
	repo := NewSQLiteToolRepository(setupTestDB(t))

	got, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteToolRepository_SaveUpserts(t *testing.T) {
	repo := NewSQLiteToolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t1", Name: "Old Name"}))
	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t1", Name: "New Name", Category: "Video"}))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "Video", got.Category)

	tools, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tools, 1)
}

func TestSQLiteToolRepository_ListByCategory(t *testing.T) {
	repo := NewSQLiteToolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t1", Name: "A", Category: "Video"}))
	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t2", Name: "B", Category: "Video"}))
	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t3", Name: "C", Category: "Coding"}))

	tools, err := repo.ListByCategory(ctx, "Video")
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}

func TestSQLiteToolRepository_IncrementViews(t *testing.T) {
	repo := NewSQLiteToolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Tool{ID: "t1", Name: "A"}))
	require.NoError(t, repo.IncrementViews(ctx, "t1"))
	require.NoError(t, repo.IncrementViews(ctx, "t1"))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Views)
}
