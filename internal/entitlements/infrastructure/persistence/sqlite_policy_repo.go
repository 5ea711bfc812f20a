package persistence

import (
	"context"
	"database/sql"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
)

// SQLitePolicyRepository reads content policies from SQLite.
type SQLitePolicyRepository struct {
	db *sql.DB
}

// NewSQLitePolicyRepository creates a new repository.
func NewSQLitePolicyRepository(db *sql.DB) *SQLitePolicyRepository {
	return &SQLitePolicyRepository{db: db}
}

// Get returns the policy for an item, or nil, nil when none exists.
func (r *SQLitePolicyRepository) Get(ctx context.Context, itemType domain.ItemType, itemID string) (*domain.ContentPolicy, error) {
	query := `
		SELECT access_type, locked, lock_reason, price
		FROM content_policies
		WHERE item_type = ? AND item_id = ?
	`

	var (
		accessType string
		locked     int
		lockReason sql.NullString
		price      sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, query, string(itemType), itemID).
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
		Locked:     locked == 1,
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

var _ domain.PolicyRepository = (*SQLitePolicyRepository)(nil)
