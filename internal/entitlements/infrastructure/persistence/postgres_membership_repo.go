package persistence

import (
	"context"
	"time"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMembershipRepository stores subscriptions and purchases in
// PostgreSQL.
type PostgresMembershipRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMembershipRepository creates a new repository.
func NewPostgresMembershipRepository(pool *pgxpool.Pool) *PostgresMembershipRepository {
	return &PostgresMembershipRepository{pool: pool}
}

// Subscriptions returns the user's active plan ids.
func (r *PostgresMembershipRepository) Subscriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT plan FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY plan
	`
	rows, err := r.pool.Query(ctx, query, userID.String())
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
func (r *PostgresMembershipRepository) Purchases(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT item_id FROM purchases
		WHERE user_id = $1
		ORDER BY item_id
	`
	rows, err := r.pool.Query(ctx, query, userID.String())
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

// AddPurchase records a completed one-time purchase.
func (r *PostgresMembershipRepository) AddPurchase(ctx context.Context, userID uuid.UUID, itemID string, amount float64) error {
	query := `
		INSERT INTO purchases (user_id, item_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, item_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID.String(), itemID, amount, time.Now().UTC())
	return err
}

// SetSubscription activates or cancels a plan for the user.
func (r *PostgresMembershipRepository) SetSubscription(ctx context.Context, userID uuid.UUID, plan string, active bool) error {
	status := "cancelled"
	if active {
		status = "active"
	}

	query := `
		INSERT INTO subscriptions (user_id, plan, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, plan) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, userID.String(), plan, status, time.Now().UTC())
	return err
}

var _ domain.MembershipRepository = (*PostgresMembershipRepository)(nil)
