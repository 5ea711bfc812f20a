// Package application wires the entitlement cache and resolver into
// the access-check operation the UI surfaces call.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
)

// Service answers "may this user view this item" for UI callers.
type Service struct {
	policies domain.PolicyRepository
	cache    *Cache
	resolver domain.Resolver
	logger   *slog.Logger
}

// NewService creates the entitlement service.
func NewService(policies domain.PolicyRepository, cache *Cache, resolver domain.Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{policies: policies, cache: cache, resolver: resolver, logger: logger}
}

// Cache exposes the session cache for lifecycle wiring (sign-in load,
// sign-out clear, checkout invalidation).
func (s *Service) Cache() *Cache {
	return s.cache
}

// CheckAccess resolves the access decision for one content item. A
// nil userID means the caller is anonymous. A missing policy document
// grants access; a policy store read failure is returned to the
// caller.
func (s *Service) CheckAccess(ctx context.Context, itemType domain.ItemType, itemID string, userID *uuid.UUID) (domain.AccessDecision, error) {
	policy, err := s.policies.Get(ctx, itemType, itemID)
	if err != nil {
		return domain.AccessDecision{}, fmt.Errorf("load access policy for %s/%s: %w", itemType, itemID, err)
	}

	decision := s.resolver.Resolve(policy, s.cache, userID != nil)

	if !decision.HasAccess {
		s.logger.Debug("access denied",
			"item_type", string(itemType),
			"item_id", itemID,
			"access_type", string(decision.AccessType),
			"signed_in", userID != nil,
		)
	}

	return decision, nil
}
