package application

import (
	"context"
	"errors"
	"testing"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePolicies struct {
	policies map[string]*domain.ContentPolicy
	err      error
}

func (f *fakePolicies) Get(ctx context.Context, itemType domain.ItemType, itemID string) (*domain.ContentPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policies[string(itemType)+"/"+itemID], nil
}

func newTestService(policies *fakePolicies, memberships domain.MembershipRepository) *Service {
	cache := NewCache(memberships, nil)
	return NewService(policies, cache, domain.NewResolver("premium", 99), nil)
}

func TestCheckAccess_MissingPolicyGrants(t *testing.T) {
	svc := newTestService(&fakePolicies{policies: map[string]*domain.ContentPolicy{}}, &fakeMemberships{})

	decision, err := svc.CheckAccess(context.Background(), domain.ItemTypeTool, "unknown", nil)
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)
}

func TestCheckAccess_PolicyStoreFailureReturnsError(t *testing.T) {
	svc := newTestService(&fakePolicies{err: errors.New("store offline")}, &fakeMemberships{})

	_, err := svc.CheckAccess(context.Background(), domain.ItemTypeTool, "t1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
}

func TestCheckAccess_SubscriptionFlow(t *testing.T) {
	policies := &fakePolicies{policies: map[string]*domain.ContentPolicy{
		"guide/g1": {
			ItemID:     "g1",
			ItemType:   domain.ItemTypeGuide,
			AccessType: domain.AccessSubscription,
			Locked:     true,
		},
	}}
	memberships := &fakeMemberships{plans: []string{"premium"}}
	svc := newTestService(policies, memberships)
	userID := uuid.New()

	// Anonymous: denied with the sign-in reason.
	decision, err := svc.CheckAccess(context.Background(), domain.ItemTypeGuide, "g1", nil)
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, domain.ReasonSignIn, decision.Reason)

	// Signed in before the cache load completes: still denied, the
	// cache holds the empty prior snapshot.
	decision, err = svc.CheckAccess(context.Background(), domain.ItemTypeGuide, "g1", &userID)
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, domain.ReasonSubscribe, decision.Reason)

	// After the load the plan unlocks the guide.
	svc.Cache().Load(context.Background(), userID)
	decision, err = svc.CheckAccess(context.Background(), domain.ItemTypeGuide, "g1", &userID)
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)
}

func TestCheckAccess_SignOutRevokesCachedEntitlements(t *testing.T) {
	policies := &fakePolicies{policies: map[string]*domain.ContentPolicy{
		"tool/t1": {
			ItemID:     "t1",
			ItemType:   domain.ItemTypeTool,
			AccessType: domain.AccessOneTimePurchase,
			Locked:     true,
		},
	}}
	memberships := &fakeMemberships{purchases: []string{"t1"}}
	svc := newTestService(policies, memberships)
	userID := uuid.New()

	svc.Cache().Load(context.Background(), userID)
	decision, err := svc.CheckAccess(context.Background(), domain.ItemTypeTool, "t1", &userID)
	require.NoError(t, err)
	require.True(t, decision.HasAccess)

	svc.Cache().Clear()
	decision, err = svc.CheckAccess(context.Background(), domain.ItemTypeTool, "t1", nil)
	require.NoError(t, err)
	// The unowned purchase view now denies again for a signed-in user
	// and the anonymous caller gets the sign-in reason.
	assert.False(t, decision.HasAccess)
	assert.Equal(t, domain.ReasonSignIn, decision.Reason)
}
