package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/migrations"
	"github.com/google/uuid"
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

func insertPolicy(t *testing.T, db *sql.DB, itemType, itemID, accessType string, locked bool, lockReason *string, price *float64) {
	t.Helper()

	lockedInt := 0
	if locked {
		lockedInt = 1
	}
	_, err := db.Exec(`
		INSERT INTO content_policies (item_type, item_id, access_type, locked, lock_reason, price, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		itemType, itemID, accessType, lockedInt, lockReason, price,
		time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)
}

func TestSQLitePolicyRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLitePolicyRepository(db)

	reason := "Members only"
	priceValue := 149.0
	insertPolicy(t, db, "guide", "g1", "SUBSCRIPTION", true, &reason, &priceValue)

	policy, err := repo.Get(context.Background(), domain.ItemTypeGuide, "g1")
	require.NoError(t, err)
	require.NotNil(t, policy)

	assert.Equal(t, "g1", policy.ItemID)
	assert.Equal(t, domain.ItemTypeGuide, policy.ItemType)
	assert.Equal(t, domain.AccessSubscription, policy.AccessType)
	assert.True(t, policy.Locked)
	assert.Equal(t, "Members only", policy.LockReason)
	require.NotNil(t, policy.Price)
	assert.Equal(t, 149.0, *policy.Price)
}

func TestSQLitePolicyRepository_GetMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLitePolicyRepository(db)

	policy, err := repo.Get(context.Background(), domain.ItemTypeTool, "nope")
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestSQLitePolicyRepository_NullFieldsStayUnset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLitePolicyRepository(db)

	insertPolicy(t, db, "tool", "t1", "ONE_TIME_PURCHASE", true, nil, nil)

	policy, err := repo.Get(context.Background(), domain.ItemTypeTool, "t1")
	require.NoError(t, err)
	require.NotNil(t, policy)

	assert.Empty(t, policy.LockReason)
	assert.Nil(t, policy.Price)
}

func TestSQLiteMembershipRepository_EmptyUserYieldsEmptySets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteMembershipRepository(db)
	userID := uuid.New()

	plans, err := repo.Subscriptions(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, plans)

	purchases, err := repo.Purchases(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestSQLiteMembershipRepository_SubscriptionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteMembershipRepository(db)
	userID := uuid.New()

	require.NoError(t, repo.SetSubscription(context.Background(), userID, "premium", true))

	plans, err := repo.Subscriptions(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"premium"}, plans)

	// Cancelling removes it from the active set.
	require.NoError(t, repo.SetSubscription(context.Background(), userID, "premium", false))

	plans, err = repo.Subscriptions(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestSQLiteMembershipRepository_AddPurchaseIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteMembershipRepository(db)
	userID := uuid.New()

	require.NoError(t, repo.AddPurchase(context.Background(), userID, "t1", 49))
	require.NoError(t, repo.AddPurchase(context.Background(), userID, "t1", 49))
	require.NoError(t, repo.AddPurchase(context.Background(), userID, "t2", 0))

	purchases, err := repo.Purchases(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, purchases)
}

func TestSQLiteMembershipRepository_IsolatesUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteMembershipRepository(db)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, repo.AddPurchase(context.Background(), alice, "t1", 49))

	purchases, err := repo.Purchases(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
