package application

import (
	"context"
	"errors"
	"testing"

	"github.com/creatorhub/creatorhub/internal/billing/domain"
	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	charges []domain.Charge
	err     error
}

func (g *fakeGateway) Charge(ctx context.Context, userID uuid.UUID, amount float64, description string) (*domain.Charge, error) {
	if g.err != nil {
		return nil, g.err
	}
	charge := domain.Charge{ID: uuid.New().String(), UserID: userID, Amount: amount}
	g.charges = append(g.charges, charge)
	return &charge, nil
}

type fakeMemberships struct {
	purchases     map[string]float64
	subscriptions map[string]bool
	err           error
}

func newFakeMemberships() *fakeMemberships {
	return &fakeMemberships{
		purchases:     make(map[string]float64),
		subscriptions: make(map[string]bool),
	}
}

func (m *fakeMemberships) Subscriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var plans []string
	for plan, active := range m.subscriptions {
		if active {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (m *fakeMemberships) Purchases(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var items []string
	for item := range m.purchases {
		items = append(items, item)
	}
	return items, nil
}

func (m *fakeMemberships) AddPurchase(ctx context.Context, userID uuid.UUID, itemID string, amount float64) error {
	if m.err != nil {
		return m.err
	}
	m.purchases[itemID] = amount
	return nil
}

func (m *fakeMemberships) SetSubscription(ctx context.Context, userID uuid.UUID, plan string, active bool) error {
	if m.err != nil {
		return m.err
	}
	m.subscriptions[plan] = active
	return nil
}

type fakePolicies struct {
	policy *entitlementsDomain.ContentPolicy
	err    error
}

func (p *fakePolicies) Get(ctx context.Context, itemType entitlementsDomain.ItemType, itemID string) (*entitlementsDomain.ContentPolicy, error) {
	return p.policy, p.err
}

type fakeInvalidator struct {
	calls []uuid.UUID
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, userID uuid.UUID) {
	f.calls = append(f.calls, userID)
}

type recordingPublisher struct {
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event eventbus.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func newCheckout(gateway *fakeGateway, memberships *fakeMemberships, policies *fakePolicies, invalidator *fakeInvalidator, pub *recordingPublisher) *CheckoutService {
	return NewCheckoutService(gateway, memberships, policies, invalidator, pub, "premium", 99, nil)
}

func TestPurchaseItem_ChargesPolicyPrice(t *testing.T) {
	price := 249.0
	gateway := &fakeGateway{}
	memberships := newFakeMemberships()
	invalidator := &fakeInvalidator{}
	pub := &recordingPublisher{}
	svc := newCheckout(gateway, memberships, &fakePolicies{
		policy: &entitlementsDomain.ContentPolicy{Price: &price},
	}, invalidator, pub)

	userID := uuid.New()
	require.NoError(t, svc.PurchaseItem(context.Background(), userID, entitlementsDomain.ItemTypeTool, "t1"))

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 249.0, gateway.charges[0].Amount)
	assert.Equal(t, 249.0, memberships.purchases["t1"])
	assert.Equal(t, []uuid.UUID{userID}, invalidator.calls)

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventPurchaseCompleted, pub.events[0].Type)
	assert.Equal(t, userID.String(), pub.events[0].UserID)
}

func TestPurchaseItem_UnpricedPolicyChargesNothing(t *testing.T) {
	gateway := &fakeGateway{}
	memberships := newFakeMemberships()
	svc := newCheckout(gateway, memberships, &fakePolicies{}, &fakeInvalidator{}, &recordingPublisher{})

	require.NoError(t, svc.PurchaseItem(context.Background(), uuid.New(), entitlementsDomain.ItemTypeTool, "t1"))

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 0.0, gateway.charges[0].Amount)
	assert.Contains(t, memberships.purchases, "t1")
}

func TestPurchaseItem_DeclinedChargeRecordsNothing(t *testing.T) {
	memberships := newFakeMemberships()
	invalidator := &fakeInvalidator{}
	svc := newCheckout(&fakeGateway{err: domain.ErrChargeDeclined}, memberships, &fakePolicies{}, invalidator, &recordingPublisher{})

	err := svc.PurchaseItem(context.Background(), uuid.New(), entitlementsDomain.ItemTypeTool, "t1")
	require.ErrorIs(t, err, domain.ErrChargeDeclined)
	assert.Empty(t, memberships.purchases)
	assert.Empty(t, invalidator.calls)
}

func TestPurchaseItem_PolicyReadFailure(t *testing.T) {
	gateway := &fakeGateway{}
	svc := newCheckout(gateway, newFakeMemberships(), &fakePolicies{err: errors.New("store down")}, &fakeInvalidator{}, &recordingPublisher{})

	err := svc.PurchaseItem(context.Background(), uuid.New(), entitlementsDomain.ItemTypeTool, "t1")
	require.Error(t, err)
	assert.Empty(t, gateway.charges)
}

func TestSubscribe(t *testing.T) {
	gateway := &fakeGateway{}
	memberships := newFakeMemberships()
	invalidator := &fakeInvalidator{}
	pub := &recordingPublisher{}
	svc := newCheckout(gateway, memberships, &fakePolicies{}, invalidator, pub)

	userID := uuid.New()
	require.NoError(t, svc.Subscribe(context.Background(), userID))

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 99.0, gateway.charges[0].Amount)
	assert.True(t, memberships.subscriptions["premium"])
	assert.Equal(t, []uuid.UUID{userID}, invalidator.calls)

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventSubscriptionActivated, pub.events[0].Type)
}

func TestUnsubscribe(t *testing.T) {
	memberships := newFakeMemberships()
	memberships.subscriptions["premium"] = true
	invalidator := &fakeInvalidator{}
	svc := newCheckout(&fakeGateway{}, memberships, &fakePolicies{}, invalidator, &recordingPublisher{})

	userID := uuid.New()
	require.NoError(t, svc.Unsubscribe(context.Background(), userID))

	assert.False(t, memberships.subscriptions["premium"])
	assert.Equal(t, []uuid.UUID{userID}, invalidator.calls)
}
