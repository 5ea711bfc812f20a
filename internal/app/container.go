// Package app wires CreatorHub's services together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	billingApp "github.com/creatorhub/creatorhub/internal/billing/application"
	billingInfra "github.com/creatorhub/creatorhub/internal/billing/infrastructure"
	catalogApp "github.com/creatorhub/creatorhub/internal/catalog/application"
	entitlementsApp "github.com/creatorhub/creatorhub/internal/entitlements/application"
	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	entitlementsPersistence "github.com/creatorhub/creatorhub/internal/entitlements/infrastructure/persistence"
	featuresApp "github.com/creatorhub/creatorhub/internal/features/application"
	featuresPersistence "github.com/creatorhub/creatorhub/internal/features/infrastructure/persistence"
	"github.com/creatorhub/creatorhub/internal/generator"
	identityApp "github.com/creatorhub/creatorhub/internal/identity/application"
	identityPersistence "github.com/creatorhub/creatorhub/internal/identity/infrastructure/persistence"
	personalizationApp "github.com/creatorhub/creatorhub/internal/personalization/application"
	personalizationPersistence "github.com/creatorhub/creatorhub/internal/personalization/infrastructure/persistence"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/eventbus"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/migrations"
	"github.com/creatorhub/creatorhub/pkg/config"
	"github.com/creatorhub/creatorhub/pkg/observability"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DBDriver database.Driver
	SQLiteDB *sql.DB
	Postgres *pgxpool.Pool

	// Optional infrastructure
	RedisClient    *redis.Client
	EventPublisher eventbus.Publisher

	// Health
	Health *observability.HealthRegistry

	// Repositories
	PolicyRepo     entitlementsDomain.PolicyRepository
	MembershipRepo entitlementsDomain.MembershipRepository

	// Services
	Entitlements    *entitlementsApp.Service
	Features        *featuresApp.Registry
	Personalization *personalizationApp.Service
	Catalog         *catalogApp.Service
	Checkout        *billingApp.CheckoutService
	Sessions        *identityApp.Watcher
}

// NewContainer builds the full dependency graph. Optional backends
// (Redis, RabbitMQ, the query assistant) degrade to local behavior
// when unconfigured or unreachable; the database is required.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		Health: observability.NewHealthRegistry(),
	}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initRedis(ctx)
	c.initEventPublisher()

	factory := NewRepositoryFactory(c.DBDriver, c.SQLiteDB, c.Postgres)
	if err := c.initRepositories(factory); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.initServices(ctx, factory); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	c.DBDriver = database.DetectDriver(c.Config.DatabaseURL)

	switch c.DBDriver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, database.Config{URL: c.Config.DatabaseURL})
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := migrations.RunPostgres(ctx, pool); err != nil {
			pool.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.Postgres = pool
		c.Health.Register("database", observability.PingChecker(pool.Ping))

	case database.DriverSQLite:
		path := database.SQLitePathFromURL(c.Config.DatabaseURL)
		db, err := database.OpenSQLite(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := migrations.RunSQLite(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		c.Health.Register("database", observability.PingChecker(db.PingContext))

	default:
		return fmt.Errorf("unsupported driver: %s", c.DBDriver)
	}

	c.Logger.Info("database ready", "driver", c.DBDriver)
	return nil
}

// initRedis connects to Redis when configured. An unreachable Redis
// is logged and skipped; repositories then run uncached.
func (c *Container) initRedis(ctx context.Context) {
	if c.Config.RedisURL == "" {
		return
	}

	opts, err := redis.ParseURL(c.Config.RedisURL)
	if err != nil {
		c.Logger.Warn("invalid Redis URL, continuing without Redis", "error", err)
		return
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		c.Logger.Warn("Redis unreachable, continuing without Redis", "error", err)
		client.Close()
		return
	}

	c.RedisClient = client
	c.Health.Register("redis", observability.PingChecker(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}))
	c.Logger.Info("redis connected")
}

// initEventPublisher connects to RabbitMQ when configured, otherwise
// events are discarded.
func (c *Container) initEventPublisher() {
	c.EventPublisher = eventbus.NoopPublisher{}
	if c.Config.RabbitMQURL == "" {
		return
	}

	publisher, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, c.Logger)
	if err != nil {
		c.Logger.Warn("RabbitMQ unreachable, events will be discarded", "error", err)
		return
	}
	c.EventPublisher = publisher
	c.Logger.Info("event publisher connected")
}

func (c *Container) initRepositories(factory *RepositoryFactory) error {
	policyRepo, err := factory.PolicyRepository()
	if err != nil {
		return err
	}
	if c.RedisClient != nil {
		policyRepo = entitlementsPersistence.NewRedisPolicyCache(c.RedisClient, policyRepo, c.Logger)
	}
	c.PolicyRepo = policyRepo

	c.MembershipRepo, err = factory.MembershipRepository()
	return err
}

func (c *Container) initServices(ctx context.Context, factory *RepositoryFactory) error {
	// Feature flags. Remote configuration comes from Redis when
	// available, otherwise from the feature_overrides table.
	var source featuresApp.ConfigSource
	if c.RedisClient != nil {
		source = featuresPersistence.NewRedisConfigSource(c.RedisClient)
	} else {
		var err error
		source, err = factory.FeatureConfigSource()
		if err != nil {
			return err
		}
	}
	c.Features = featuresApp.NewRegistry(source, c.Logger)
	c.Features.Initialize(ctx)

	// Entitlements.
	resolver := entitlementsDomain.NewResolver(c.Config.SubscriptionPlan, c.Config.SubscriptionPrice)
	cache := entitlementsApp.NewCache(c.MembershipRepo, c.Logger)
	c.Entitlements = entitlementsApp.NewService(c.PolicyRepo, cache, resolver, c.Logger)

	// Personalization.
	store := personalizationPersistence.NewFileStore(filepath.Join(c.Config.DataDir, "personalization"))
	c.Personalization = personalizationApp.NewService(store, c.Features, c.Config.RecentlyViewedLimit, c.Logger)

	// Catalog.
	tools, err := factory.ToolRepository()
	if err != nil {
		return err
	}
	var expander catalogApp.QueryExpander
	if c.Config.GeneratorURL != "" {
		clientConfig := generator.DefaultClientConfig(c.Config.GeneratorURL)
		clientConfig.Timeout = c.Config.GeneratorTimeout
		expander = generator.NewFallback(generator.NewHTTPClient(clientConfig, c.Logger), c.Logger)
	}
	c.Catalog = catalogApp.NewService(tools, c.Features, expander, c.EventPublisher, c.Logger)

	// Checkout.
	gateway := billingInfra.NewStubGateway(c.Logger)
	c.Checkout = billingApp.NewCheckoutService(
		gateway, c.MembershipRepo, c.PolicyRepo, cache, c.EventPublisher,
		c.Config.SubscriptionPlan, c.Config.SubscriptionPrice, c.Logger,
	)

	// Sessions. Sign-in loads the entitlement cache, sign-out clears
	// it; a persisted session from a previous run is replayed.
	sessions := identityPersistence.NewFileSessionRepository(filepath.Join(c.Config.DataDir, "session.json"))
	c.Sessions = identityApp.NewWatcher(sessions, c.Logger)
	c.Sessions.Subscribe(&cacheListener{cache: cache})
	if err := c.Sessions.Restore(ctx); err != nil {
		c.Logger.Warn("failed to restore session", "error", err)
	}
	return nil
}

// Close releases all container resources.
func (c *Container) Close() error {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("failed to close Redis client", "error", err)
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Warn("failed to close database", "error", err)
		}
	}
	return nil
}

// cacheListener keeps the entitlement cache in step with sign-in
// state.
type cacheListener struct {
	cache *entitlementsApp.Cache
}

func (l *cacheListener) OnSignIn(ctx context.Context, userID uuid.UUID) {
	// Drop the previous user's sets before the fresh load lands.
	l.cache.Clear()
	l.cache.Load(ctx, userID)
}

func (l *cacheListener) OnSignOut(ctx context.Context) {
	l.cache.Clear()
}
