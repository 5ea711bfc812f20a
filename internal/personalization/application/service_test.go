package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	featuresDomain "github.com/creatorhub/creatorhub/internal/features/domain"
	"github.com/creatorhub/creatorhub/internal/personalization/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory personalization store.
type memStore struct {
	favorites map[string][]string
	recent    []domain.RecentItem
	reviews   map[string][]domain.Review
	readErr   error
	writeErr  error
}

func newMemStore() *memStore {
	return &memStore{
		favorites: make(map[string][]string),
		reviews:   make(map[string][]domain.Review),
	}
}

func (m *memStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	return m.favorites[userID], m.readErr
}

func (m *memStore) SaveFavorites(ctx context.Context, userID string, itemIDs []string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.favorites[userID] = itemIDs
	return nil
}

func (m *memStore) RecentlyViewed(ctx context.Context) ([]domain.RecentItem, error) {
	return m.recent, m.readErr
}

func (m *memStore) SaveRecentlyViewed(ctx context.Context, items []domain.RecentItem) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.recent = items
	return nil
}

func (m *memStore) Reviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	return m.reviews[itemID], m.readErr
}

func (m *memStore) SaveReviews(ctx context.Context, itemID string, reviews []domain.Review) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.reviews[itemID] = reviews
	return nil
}

var _ domain.Store = (*memStore)(nil)

// allFlags enables or disables every feature uniformly.
type allFlags bool

func (f allFlags) IsEnabled(id string) bool { return bool(f) }

func newTestService(store domain.Store) *Service {
	return NewService(store, allFlags(true), 0, nil)
}

func TestFavorites_AddRemoveCycle(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	assert.False(t, svc.IsFavorite(ctx, "alice", "t1"))
	assert.True(t, svc.AddFavorite(ctx, "alice", "t1"))
	assert.True(t, svc.IsFavorite(ctx, "alice", "t1"))

	// Adding again is a no-op.
	assert.False(t, svc.AddFavorite(ctx, "alice", "t1"))
	assert.Equal(t, []string{"t1"}, svc.Favorites(ctx, "alice"))

	assert.True(t, svc.RemoveFavorite(ctx, "alice", "t1"))
	assert.False(t, svc.IsFavorite(ctx, "alice", "t1"))
}

func TestFavorites_ScopedPerUser(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	require.True(t, svc.AddFavorite(ctx, "alice", "t1"))

	assert.False(t, svc.IsFavorite(ctx, "bob", "t1"))
	assert.Empty(t, svc.Favorites(ctx, "bob"))
}

func TestRecordView_DeduplicatesAndMovesToFront(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	svc.RecordView(ctx, domain.RecentItem{ID: "t1", Name: "Tool One"})
	svc.RecordView(ctx, domain.RecentItem{ID: "t2", Name: "Tool Two"})
	svc.RecordView(ctx, domain.RecentItem{ID: "t1", Name: "Tool One"})

	recent := svc.RecentlyViewed(ctx)
	require.Len(t, recent, 2)
	assert.Equal(t, "t1", recent[0].ID)
	assert.Equal(t, "t2", recent[1].ID)
}

func TestRecordView_TruncatesToLimit(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		svc.RecordView(ctx, domain.RecentItem{ID: fmt.Sprintf("t%d", i)})
	}

	recent := svc.RecentlyViewed(ctx)
	require.Len(t, recent, DefaultRecentLimit)
	// Most recent first.
	assert.Equal(t, "t24", recent[0].ID)
	assert.Equal(t, "t15", recent[len(recent)-1].ID)
}

func TestAverageRating(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	assert.Equal(t, float64(0), svc.AverageRating(ctx, "t1"))

	require.True(t, svc.AddReview(ctx, "t1", "alice", 4, "solid"))
	require.True(t, svc.AddReview(ctx, "t1", "bob", 5, "great"))

	assert.Equal(t, 4.5, svc.AverageRating(ctx, "t1"))

	// Rounded to one decimal: (4+5+5)/3 = 4.666... -> 4.7
	require.True(t, svc.AddReview(ctx, "t1", "carol", 5, ""))
	assert.Equal(t, 4.7, svc.AverageRating(ctx, "t1"))
}

func TestDisabledFlagsShortCircuitEverything(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, allFlags(false), 0, nil)
	ctx := context.Background()

	assert.False(t, svc.AddFavorite(ctx, "alice", "t1"))
	assert.False(t, svc.IsFavorite(ctx, "alice", "t1"))
	assert.Nil(t, svc.Favorites(ctx, "alice"))

	svc.RecordView(ctx, domain.RecentItem{ID: "t1"})
	assert.Nil(t, svc.RecentlyViewed(ctx))

	assert.False(t, svc.AddReview(ctx, "t1", "alice", 5, ""))
	assert.Equal(t, float64(0), svc.AverageRating(ctx, "t1"))

	// Nothing reached the store.
	assert.Empty(t, store.favorites)
	assert.Empty(t, store.recent)
	assert.Empty(t, store.reviews)
}

func TestStorageFailuresDegradeGracefully(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("corrupt storage")
	svc := newTestService(store)
	ctx := context.Background()

	assert.False(t, svc.AddFavorite(ctx, "alice", "t1"))
	assert.Nil(t, svc.Favorites(ctx, "alice"))
	assert.Nil(t, svc.RecentlyViewed(ctx))
	assert.Equal(t, float64(0), svc.AverageRating(ctx, "t1"))

	store.readErr = nil
	store.writeErr = errors.New("disk full")
	assert.False(t, svc.AddFavorite(ctx, "alice", "t1"))
	assert.False(t, svc.AddReview(ctx, "t1", "alice", 5, ""))
}

func TestFlagIDsMatchRegistrySet(t *testing.T) {
	// The gates used here must stay inside the compiled-in flag set.
	known := make(map[string]bool)
	for _, id := range featuresDomain.KnownFeatureIDs() {
		known[id] = true
	}
	assert.True(t, known[featuresDomain.FeatureFavorites])
	assert.True(t, known[featuresDomain.FeatureRecentlyViewed])
	assert.True(t, known[featuresDomain.FeatureToolReviews])
}
