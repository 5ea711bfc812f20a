package domain

// ItemType identifies the content namespace a policy belongs to.
type ItemType string

const (
	ItemTypeTool  ItemType = "tool"
	ItemTypeGuide ItemType = "guide"
	ItemTypeBlog  ItemType = "blog"
)

// IsValid returns true for a known item type.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeTool, ItemTypeGuide, ItemTypeBlog:
		return true
	default:
		return false
	}
}

// AccessType describes how a content item is monetized.
type AccessType string

const (
	AccessFree            AccessType = "FREE"
	AccessSubscription    AccessType = "SUBSCRIPTION"
	AccessOneTimePurchase AccessType = "ONE_TIME_PURCHASE"
)

// IsValid returns true for a known access type.
func (t AccessType) IsValid() bool {
	switch t {
	case AccessFree, AccessSubscription, AccessOneTimePurchase:
		return true
	default:
		return false
	}
}

// ContentPolicy is one content item's monetization rule.
//
// When Locked is false the access type is irrelevant and the item is
// always accessible. Price is only meaningful for locked, non-free
// items; nil means "use the default for the access type".
type ContentPolicy struct {
	ItemID     string
	ItemType   ItemType
	AccessType AccessType
	Locked     bool
	LockReason string
	Price      *float64
}
