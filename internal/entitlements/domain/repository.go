package domain

import (
	"context"

	"github.com/google/uuid"
)

// PolicyRepository reads per-item access policies. The engine never
// writes policies; the admin surface owns them.
type PolicyRepository interface {
	// Get returns the policy for an item, or nil, nil when no policy
	// document exists (absence is not an error).
	Get(ctx context.Context, itemType ItemType, itemID string) (*ContentPolicy, error)
}

// MembershipRepository reads and writes a user's subscription plans
// and one-time purchases.
type MembershipRepository interface {
	// Subscriptions returns the user's active plan ids. A user with
	// no subscription rows yields an empty slice, not an error.
	Subscriptions(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Purchases returns the item ids the user has bought. A user with
	// no purchase rows yields an empty slice, not an error.
	Purchases(ctx context.Context, userID uuid.UUID) ([]string, error)

	// AddPurchase records a completed one-time purchase.
	AddPurchase(ctx context.Context, userID uuid.UUID, itemID string, amount float64) error

	// SetSubscription activates or cancels a plan for the user.
	SetSubscription(ctx context.Context, userID uuid.UUID, plan string, active bool) error
}
