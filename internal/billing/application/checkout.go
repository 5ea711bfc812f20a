// Package application implements the checkout flow: charge, record
// the membership, and refresh downstream entitlements.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creatorhub/creatorhub/internal/billing/domain"
	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// Event types published by checkout.
const (
	EventPurchaseCompleted     = "billing.purchase_completed"
	EventSubscriptionActivated = "billing.subscription_activated"
)

// EntitlementInvalidator re-reads a user's entitlements after a
// membership change.
type EntitlementInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

// CheckoutService runs purchases and subscription sign-ups. After a
// successful charge the membership is recorded, an event is emitted,
// and the entitlement cache is refreshed so the new access applies
// immediately.
type CheckoutService struct {
	gateway           domain.PaymentGateway
	memberships       entitlementsDomain.MembershipRepository
	policies          entitlementsDomain.PolicyRepository
	invalidator       EntitlementInvalidator
	events            eventbus.Publisher
	logger            *slog.Logger
	subscriptionPlan  string
	subscriptionPrice float64
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(
	gateway domain.PaymentGateway,
	memberships entitlementsDomain.MembershipRepository,
	policies entitlementsDomain.PolicyRepository,
	invalidator EntitlementInvalidator,
	events eventbus.Publisher,
	subscriptionPlan string,
	subscriptionPrice float64,
	logger *slog.Logger,
) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	if events == nil {
		events = eventbus.NoopPublisher{}
	}
	return &CheckoutService{
		gateway:           gateway,
		memberships:       memberships,
		policies:          policies,
		invalidator:       invalidator,
		events:            events,
		logger:            logger,
		subscriptionPlan:  subscriptionPlan,
		subscriptionPrice: subscriptionPrice,
	}
}

// PurchaseItem charges the user for a single item and records the
// purchase. The price comes from the item's content policy; items
// without a priced policy charge nothing but still record.
func (s *CheckoutService) PurchaseItem(ctx context.Context, userID uuid.UUID, itemType entitlementsDomain.ItemType, itemID string) error {
	price := 0.0
	policy, err := s.policies.Get(ctx, itemType, itemID)
	if err != nil {
		return fmt.Errorf("failed to read policy for %s/%s: %w", itemType, itemID, err)
	}
	if policy != nil && policy.Price != nil {
		price = *policy.Price
	}

	charge, err := s.gateway.Charge(ctx, userID, price, fmt.Sprintf("purchase %s", itemID))
	if err != nil {
		return fmt.Errorf("charge failed: %w", err)
	}

	if err := s.memberships.AddPurchase(ctx, userID, itemID, price); err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}

	s.logger.Info("purchase completed", "user_id", userID, "item_id", itemID, "amount", price)
	s.publish(ctx, eventbus.NewEvent(EventPurchaseCompleted, userID.String(), map[string]any{
		"item_id":   itemID,
		"item_type": string(itemType),
		"amount":    price,
		"charge_id": charge.ID,
	}))

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}
	return nil
}

// Subscribe charges the user for the subscription plan and activates
// it.
func (s *CheckoutService) Subscribe(ctx context.Context, userID uuid.UUID) error {
	charge, err := s.gateway.Charge(ctx, userID, s.subscriptionPrice, fmt.Sprintf("subscribe %s", s.subscriptionPlan))
	if err != nil {
		return fmt.Errorf("charge failed: %w", err)
	}

	if err := s.memberships.SetSubscription(ctx, userID, s.subscriptionPlan, true); err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}

	s.logger.Info("subscription activated", "user_id", userID, "plan", s.subscriptionPlan)
	s.publish(ctx, eventbus.NewEvent(EventSubscriptionActivated, userID.String(), map[string]any{
		"plan":      s.subscriptionPlan,
		"amount":    s.subscriptionPrice,
		"charge_id": charge.ID,
	}))

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}
	return nil
}

// Unsubscribe cancels the user's subscription plan. No charge is
// involved.
func (s *CheckoutService) Unsubscribe(ctx context.Context, userID uuid.UUID) error {
	if err := s.memberships.SetSubscription(ctx, userID, s.subscriptionPlan, false); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.logger.Info("subscription cancelled", "user_id", userID, "plan", s.subscriptionPlan)
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}
	return nil
}

func (s *CheckoutService) publish(ctx context.Context, event eventbus.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish billing event", "type", event.Type, "error", err)
	}
}
