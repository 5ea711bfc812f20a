// Package domain defines the feature flags gating CreatorHub's
// optional capabilities.
package domain

// Feature ids compiled into the registry. The registry is closed-world
// over this set: remote configuration can toggle these and nothing else.
const (
	FeatureAISearch          = "ai-search"
	FeatureSmartFilters      = "smart-filters"
	FeatureSimilarTools      = "similar-tools"
	FeatureTrendingTools     = "trending-tools"
	FeaturePersonalizedFeed  = "personalized-feed"
	FeatureToolComparison    = "tool-comparison"
	FeatureFavorites         = "favorites-system"
	FeatureToolReviews       = "tool-reviews"
	FeatureShareTools        = "share-tools"
	FeatureEmailAlerts       = "email-alerts"
	FeatureTextToSpeech      = "text-to-speech"
	FeatureQuickCopy         = "quick-copy"
	FeatureDarkMode          = "dark-mode"
	FeatureQuickPreview      = "quick-preview"
	FeatureRecentlyViewed    = "recently-viewed"
	FeatureSurpriseMe        = "surprise-me"
	FeaturePopularSearches   = "popular-searches"
	FeatureRelatedCategories = "related-categories"
	FeatureSortRating        = "sort-rating"
	FeatureViewToggle        = "view-toggle"
)

// Flag is one optional capability and its current state.
type Flag struct {
	ID      string
	Enabled bool
}

// KnownFeatureIDs returns all compiled-in feature ids.
func KnownFeatureIDs() []string {
	return []string{
		FeatureAISearch,
		FeatureSmartFilters,
		FeatureSimilarTools,
		FeatureTrendingTools,
		FeaturePersonalizedFeed,
		FeatureToolComparison,
		FeatureFavorites,
		FeatureToolReviews,
		FeatureShareTools,
		FeatureEmailAlerts,
		FeatureTextToSpeech,
		FeatureQuickCopy,
		FeatureDarkMode,
		FeatureQuickPreview,
		FeatureRecentlyViewed,
		FeatureSurpriseMe,
		FeaturePopularSearches,
		FeatureRelatedCategories,
		FeatureSortRating,
		FeatureViewToggle,
	}
}
