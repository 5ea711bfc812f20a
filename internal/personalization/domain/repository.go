package domain

import "context"

// Store persists personalization collections in local scoped storage.
// Reads return empty collections when the key is absent or the stored
// value cannot be decoded; only genuine I/O failures surface as errors.
type Store interface {
	// Favorites returns the user's favorite item ids in insertion order.
	Favorites(ctx context.Context, userID string) ([]string, error)

	// SaveFavorites replaces the user's favorite list.
	SaveFavorites(ctx context.Context, userID string, itemIDs []string) error

	// RecentlyViewed returns the device-scoped recently-viewed list,
	// most recent first.
	RecentlyViewed(ctx context.Context) ([]RecentItem, error)

	// SaveRecentlyViewed replaces the recently-viewed list.
	SaveRecentlyViewed(ctx context.Context, items []RecentItem) error

	// Reviews returns all reviews for an item in insertion order.
	Reviews(ctx context.Context, itemID string) ([]Review, error)

	// SaveReviews replaces the review list for an item.
	SaveReviews(ctx context.Context, itemID string, reviews []Review) error
}
