package domain

// AccessDecision is the resolver output. It is never persisted.
type AccessDecision struct {
	// HasAccess reports whether the caller may view the item.
	HasAccess bool

	// Reason is a user-facing denial explanation. Empty when access
	// is granted.
	Reason string

	// AccessType echoes the policy's access type for UI branching.
	// Empty when access is granted without consulting a policy.
	AccessType AccessType

	// Price echoes the policy price, defaulted per access type when
	// the policy omits it. Zero when access is granted.
	Price float64
}

// Granted is the decision for unconditional access.
func Granted() AccessDecision {
	return AccessDecision{HasAccess: true}
}
