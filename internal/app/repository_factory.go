package app

import (
	"database/sql"
	"fmt"

	catalogDomain "github.com/creatorhub/creatorhub/internal/catalog/domain"
	catalogPersistence "github.com/creatorhub/creatorhub/internal/catalog/infrastructure/persistence"
	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	entitlementsPersistence "github.com/creatorhub/creatorhub/internal/entitlements/infrastructure/persistence"
	featuresApp "github.com/creatorhub/creatorhub/internal/features/application"
	featuresPersistence "github.com/creatorhub/creatorhub/internal/features/infrastructure/persistence"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryFactory creates repositories for the configured driver.
type RepositoryFactory struct {
	driver database.Driver
	db     *sql.DB
	pool   *pgxpool.Pool
}

// NewRepositoryFactory creates a factory. Exactly one of db and pool
// is set, matching the driver.
func NewRepositoryFactory(driver database.Driver, db *sql.DB, pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{driver: driver, db: db, pool: pool}
}

// PolicyRepository creates a content policy repository.
func (f *RepositoryFactory) PolicyRepository() (entitlementsDomain.PolicyRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return entitlementsPersistence.NewPostgresPolicyRepository(f.pool), nil
	case database.DriverSQLite:
		return entitlementsPersistence.NewSQLitePolicyRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// MembershipRepository creates a membership repository.
func (f *RepositoryFactory) MembershipRepository() (entitlementsDomain.MembershipRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return entitlementsPersistence.NewPostgresMembershipRepository(f.pool), nil
	case database.DriverSQLite:
		return entitlementsPersistence.NewSQLiteMembershipRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// ToolRepository creates a catalog tool repository.
func (f *RepositoryFactory) ToolRepository() (catalogDomain.ToolRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return catalogPersistence.NewPostgresToolRepository(f.pool), nil
	case database.DriverSQLite:
		return catalogPersistence.NewSQLiteToolRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// FeatureConfigSource creates the database-backed feature
// configuration source.
func (f *RepositoryFactory) FeatureConfigSource() (featuresApp.ConfigSource, error) {
	switch f.driver {
	case database.DriverPostgres:
		return featuresPersistence.NewPostgresConfigSource(f.pool), nil
	case database.DriverSQLite:
		return featuresPersistence.NewSQLiteConfigSource(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}
