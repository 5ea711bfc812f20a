package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/creatorhub/creatorhub/internal/personalization/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_FavoritesRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	favorites, err := store.Favorites(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	require.NoError(t, store.SaveFavorites(ctx, "alice", []string{"t1", "t2"}))

	favorites, err = store.Favorites(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, favorites)

	// Other users are unaffected.
	favorites, err = store.Favorites(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFileStore_RecentlyViewedRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	items := []domain.RecentItem{
		{ID: "t1", Name: "Tool One", ViewedAt: time.Now().UTC().Truncate(time.Second)},
	}
	require.NoError(t, store.SaveRecentlyViewed(ctx, items))

	got, err := store.RecentlyViewed(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, items[0].ViewedAt, got[0].ViewedAt)
}

func TestFileStore_ReviewsRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	reviews := []domain.Review{
		{UserID: "alice", Rating: 5, Comment: "great"},
	}
	require.NoError(t, store.SaveReviews(ctx, "t1", reviews))

	got, err := store.Reviews(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Rating)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "personalization")
	store := NewFileStore(dir)

	require.NoError(t, store.SaveFavorites(context.Background(), "alice", []string{"t1"}))

	_, err := os.Stat(filepath.Join(dir, "favorites_alice.json"))
	require.NoError(t, err)
}

func TestFileStore_CorruptFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "recently_viewed.json"), []byte("{not json"), 0600))

	_, err := store.RecentlyViewed(context.Background())
	assert.Error(t, err)
}
