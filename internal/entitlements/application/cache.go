package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cache holds the current user's membership sets. It is refreshed on
// sign-in, cleared on sign-out, and explicitly invalidated after a
// successful checkout.
//
// Both membership reads run concurrently and fail independently: a
// failed read leaves that set at its prior value (empty on first
// load), logged but never surfaced to the caller. Resolver queries
// during an in-flight load simply see the previous snapshot.
//
// Every Load bumps a monotonically increasing session token and
// commits only while its token is still the newest, so a slow fetch
// started under a superseded sign-in (or before a checkout's
// Invalidate) can never overwrite newer state. Clear bumps the token
// too, ending the session outright.
type Cache struct {
	memberships domain.MembershipRepository
	logger      *slog.Logger

	mu        sync.RWMutex
	session   uint64
	plans     map[string]struct{}
	purchases map[string]struct{}
}

// NewCache creates an empty cache.
func NewCache(memberships domain.MembershipRepository, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		memberships: memberships,
		logger:      logger,
		plans:       make(map[string]struct{}),
		purchases:   make(map[string]struct{}),
	}
}

// Load refreshes both membership sets for the user. It never returns
// an error: load failure degrades to the prior (possibly empty) sets.
func (c *Cache) Load(ctx context.Context, userID uuid.UUID) {
	c.mu.Lock()
	c.session++
	session := c.session
	c.mu.Unlock()

	var plans, purchases []string
	var plansErr, purchasesErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plans, plansErr = c.memberships.Subscriptions(gctx, userID)
		return nil
	})
	g.Go(func() error {
		purchases, purchasesErr = c.memberships.Purchases(gctx, userID)
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != session {
		c.logger.Debug("discarding stale entitlement load",
			"user_id", userID.String(),
			"session", session,
		)
		return
	}

	if plansErr != nil {
		c.logger.Error("failed to load subscriptions",
			"user_id", userID.String(),
			"error", plansErr,
		)
	} else {
		c.plans = toSet(plans)
	}

	if purchasesErr != nil {
		c.logger.Error("failed to load purchases",
			"user_id", userID.String(),
			"error", purchasesErr,
		)
	} else {
		c.purchases = toSet(purchases)
	}
}

// Invalidate reloads the user's memberships. Called after a successful
// purchase or subscription transaction so the session reflects it
// without waiting for the next sign-in.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID) {
	c.Load(ctx, userID)
}

// Clear resets both sets to empty and ends the current load session.
// Idempotent: clearing twice leaves the same empty state.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session++
	c.plans = make(map[string]struct{})
	c.purchases = make(map[string]struct{})
}

// HasPlan reports whether the cached user holds the plan.
func (c *Cache) HasPlan(planID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.plans[planID]
	return ok
}

// HasPurchased reports whether the cached user has bought the item.
func (c *Cache) HasPurchased(itemID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.purchases[itemID]
	return ok
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

var _ domain.EntitlementView = (*Cache)(nil)
