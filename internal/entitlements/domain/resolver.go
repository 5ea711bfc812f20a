package domain

// Default denial reasons when a policy carries no lock reason.
const (
	ReasonSignIn    = "Please sign in to access this content"
	ReasonSubscribe = "Subscribe to unlock this content"
	ReasonPurchase  = "Purchase to unlock this content"
	ReasonUnknown   = "This content is not available"
)

// EntitlementView is an immutable snapshot of the caller's memberships.
type EntitlementView interface {
	HasPlan(planID string) bool
	HasPurchased(itemID string) bool
}

// Resolver maps (content policy, entitlement view, auth state) to an
// access decision. It is a pure function over its inputs: it never
// mutates the view or the policy and is safe to call concurrently.
type Resolver struct {
	// PremiumPlan is the subscription plan that unlocks
	// SUBSCRIPTION-gated content.
	PremiumPlan string

	// SubscriptionPrice is the default monthly price echoed on
	// subscription denials when the policy omits one.
	SubscriptionPrice float64
}

// NewResolver creates a resolver with the given plan configuration.
func NewResolver(premiumPlan string, subscriptionPrice float64) Resolver {
	return Resolver{PremiumPlan: premiumPlan, SubscriptionPrice: subscriptionPrice}
}

// Resolve evaluates the policy against the entitlement view. A nil
// policy means no metadata exists for the item and grants access.
// First matching rule wins:
//
//  1. not locked            -> grant
//  2. FREE                  -> grant
//  3. anonymous caller      -> deny (sign-in reason)
//  4. SUBSCRIPTION          -> grant iff the view holds the premium plan
//  5. ONE_TIME_PURCHASE     -> grant iff the view holds the item
//  6. unrecognized type     -> deny
//
// Rule 6 denies: access control defaults closed for values the engine
// does not understand, matching the flag registry's closed-world rule.
func (r Resolver) Resolve(policy *ContentPolicy, view EntitlementView, signedIn bool) AccessDecision {
	if policy == nil {
		return Granted()
	}

	if !policy.Locked {
		return Granted()
	}

	if policy.AccessType == AccessFree {
		return Granted()
	}

	if !signedIn {
		return r.deny(policy, ReasonSignIn)
	}

	switch policy.AccessType {
	case AccessSubscription:
		if view != nil && view.HasPlan(r.PremiumPlan) {
			return Granted()
		}
		return r.deny(policy, ReasonSubscribe)

	case AccessOneTimePurchase:
		if view != nil && view.HasPurchased(policy.ItemID) {
			return Granted()
		}
		return r.deny(policy, ReasonPurchase)

	default:
		return r.deny(policy, ReasonUnknown)
	}
}

func (r Resolver) deny(policy *ContentPolicy, fallbackReason string) AccessDecision {
	reason := policy.LockReason
	if reason == "" {
		reason = fallbackReason
	}

	price := r.defaultPriceFor(policy.AccessType)
	if policy.Price != nil {
		price = *policy.Price
	}

	return AccessDecision{
		HasAccess:  false,
		Reason:     reason,
		AccessType: policy.AccessType,
		Price:      price,
	}
}

// defaultPriceFor returns the price echoed on denials when the policy
// omits one: the configured monthly default for subscriptions, zero
// for one-time purchases and anything else.
func (r Resolver) defaultPriceFor(accessType AccessType) float64 {
	if accessType == AccessSubscription {
		return r.SubscriptionPrice
	}
	return 0
}
