package persistence

import (
	"context"
	"database/sql"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPolicyRepository reads content policies from PostgreSQL.
type PostgresPolicyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPolicyRepository creates a new repository.
func NewPostgresPolicyRepository(pool *pgxpool.Pool) *PostgresPolicyRepository {
	return &PostgresPolicyRepository{pool: pool}
}

// Get returns the policy for an item, or nil, nil when none exists.
func (r *PostgresPolicyRepository) Get(ctx context.Context, itemType domain.ItemType, itemID string) (*domain.ContentPolicy, error) {
	query := `
		SELECT access_type, locked, lock_reason, price
		FROM content_policies
		WHERE item_type = $1 AND item_id = $2
	`

	var (
		accessType string
		locked     bool
		lockReason sql.NullString
		price      sql.NullFloat64
	)
	err := r.pool.QueryRow(ctx, query, string(itemType), itemID).
		Scan(&accessType, &locked, &lockReason, &price)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	policy := &domain.ContentPolicy{
		ItemID:     itemID,
		ItemType:   itemType,
		AccessType: domain.AccessType(accessType),
		Locked:     locked,
	}
	if lockReason.Valid {
		policy.LockReason = lockReason.String
	}
	if price.Valid {
		p := price.Float64
		policy.Price = &p
	}
	return policy, nil
}

var _ domain.PolicyRepository = (*PostgresPolicyRepository)(nil)
