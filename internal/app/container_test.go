package app

import (
	"context"
	"path/filepath"
	"testing"

	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/creatorhub/creatorhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		AppEnv:              "test",
		DataDir:             dir,
		DatabaseURL:         "sqlite://" + filepath.Join(dir, "test.db"),
		SubscriptionPlan:    "premium",
		SubscriptionPrice:   99,
		RecentlyViewedLimit: 10,
	}
}

func TestNewContainer_LocalMode(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, localConfig(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	assert.Equal(t, database.DriverSQLite, container.DBDriver)
	require.NotNil(t, container.SQLiteDB)
	assert.Nil(t, container.Postgres)
	assert.Nil(t, container.RedisClient)

	require.NotNil(t, container.Entitlements)
	require.NotNil(t, container.Features)
	require.NotNil(t, container.Personalization)
	require.NotNil(t, container.Catalog)
	require.NotNil(t, container.Checkout)
	require.NotNil(t, container.Sessions)

	// All flags default to enabled with no overrides stored.
	assert.True(t, container.Features.IsEnabled("favorites-system"))

	// Migrations ran: an access check on an unclassified item grants.
	decision, err := container.Entitlements.CheckAccess(ctx, entitlementsDomain.ItemTypeTool, "t1", nil)
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)

	health := container.Health.Check(ctx)
	require.Contains(t, health, "database")
}

func TestRepositoryFactory_UnsupportedDriver(t *testing.T) {
	factory := NewRepositoryFactory(database.Driver("oracle"), nil, nil)

	_, err := factory.PolicyRepository()
	assert.Error(t, err)
	_, err = factory.MembershipRepository()
	assert.Error(t, err)
	_, err = factory.ToolRepository()
	assert.Error(t, err)
	_, err = factory.FeatureConfigSource()
	assert.Error(t, err)
}
