package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
)

// SQLiteMembershipRepository stores subscriptions and purchases in SQLite.
type SQLiteMembershipRepository struct {
	db *sql.DB
}

// NewSQLiteMembershipRepository creates a new repository.
func NewSQLiteMembershipRepository(db *sql.DB) *SQLiteMembershipRepository {
	return &SQLiteMembershipRepository{db: db}
}

// Subscriptions returns the user's active plan ids.
func (r *SQLiteMembershipRepository) Subscriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT plan FROM subscriptions
		WHERE user_id = ? AND status = 'active'
		ORDER BY plan
	`
	rows, err := r.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]string, 0)
	for rows.Next() {
		var plan string
		if err := rows.Scan(&plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// Purchases returns the item ids the user has bought.
func (r *SQLiteMembershipRepository) Purchases(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT item_id FROM purchases
		WHERE user_id = ?
		ORDER BY item_id
	`
	rows, err := r.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, err
		}
		items = append(items, itemID)
	}
	return items, rows.Err()
}

// AddPurchase records a completed one-time purchase. Buying the same
// item twice keeps a single row.
func (r *SQLiteMembershipRepository) AddPurchase(ctx context.Context, userID uuid.UUID, itemID string, amount float64) error {
	query := `
		INSERT INTO purchases (user_id, item_id, amount, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, item_id) DO NOTHING
	`
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, userID.String(), itemID, amount, now)
	return err
}

// SetSubscription activates or cancels a plan for the user.
func (r *SQLiteMembershipRepository) SetSubscription(ctx context.Context, userID uuid.UUID, plan string, active bool) error {
	status := "cancelled"
	if active {
		status = "active"
	}

	query := `
		INSERT INTO subscriptions (user_id, plan, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, plan) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at
	`
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, userID.String(), plan, status, now, now)
	return err
}

var _ domain.MembershipRepository = (*SQLiteMembershipRepository)(nil)
