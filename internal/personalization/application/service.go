// Package application implements the flag-gated personalization
// operations: favorites, the recently-viewed ring, and reviews.
package application

import (
	"context"
	"log/slog"
	"math"
	"time"

	featuresDomain "github.com/creatorhub/creatorhub/internal/features/domain"
	"github.com/creatorhub/creatorhub/internal/personalization/domain"
)

// DefaultRecentLimit caps the recently-viewed ring.
const DefaultRecentLimit = 10

// FlagChecker reports whether an optional capability is active.
type FlagChecker interface {
	IsEnabled(id string) bool
}

// Service is the personalization store facade. Every operation checks
// its owning feature flag first and short-circuits to a no-op or an
// empty result when the flag is off. Storage failures degrade the same
// way: reads yield empty collections, writes report false.
type Service struct {
	store       domain.Store
	flags       FlagChecker
	logger      *slog.Logger
	recentLimit int
}

// NewService creates the personalization service. recentLimit <= 0
// selects DefaultRecentLimit.
func NewService(store domain.Store, flags FlagChecker, recentLimit int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Service{store: store, flags: flags, logger: logger, recentLimit: recentLimit}
}

// AddFavorite adds the item to the user's favorites. It reports true
// only when the item was newly added.
func (s *Service) AddFavorite(ctx context.Context, userID, itemID string) bool {
	if !s.flags.IsEnabled(featuresDomain.FeatureFavorites) {
		return false
	}

	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read favorites", "user_id", userID, "error", err)
		return false
	}

	for _, id := range favorites {
		if id == itemID {
			return false
		}
	}

	if err := s.store.SaveFavorites(ctx, userID, append(favorites, itemID)); err != nil {
		s.logger.Error("failed to save favorites", "user_id", userID, "error", err)
		return false
	}
	return true
}

// RemoveFavorite removes the item from the user's favorites.
func (s *Service) RemoveFavorite(ctx context.Context, userID, itemID string) bool {
	if !s.flags.IsEnabled(featuresDomain.FeatureFavorites) {
		return false
	}

	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read favorites", "user_id", userID, "error", err)
		return false
	}

	updated := make([]string, 0, len(favorites))
	for _, id := range favorites {
		if id != itemID {
			updated = append(updated, id)
		}
	}

	if err := s.store.SaveFavorites(ctx, userID, updated); err != nil {
		s.logger.Error("failed to save favorites", "user_id", userID, "error", err)
		return false
	}
	return true
}

// IsFavorite reports whether the item is in the user's favorites.
func (s *Service) IsFavorite(ctx context.Context, userID, itemID string) bool {
	if !s.flags.IsEnabled(featuresDomain.FeatureFavorites) {
		return false
	}

	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		return false
	}
	for _, id := range favorites {
		if id == itemID {
			return true
		}
	}
	return false
}

// Favorites returns the user's favorite item ids.
func (s *Service) Favorites(ctx context.Context, userID string) []string {
	if !s.flags.IsEnabled(featuresDomain.FeatureFavorites) {
		return nil
	}

	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read favorites", "user_id", userID, "error", err)
		return nil
	}
	return favorites
}

// RecordView pushes the item onto the recently-viewed ring. An item
// already on the list moves to the front instead of duplicating; the
// list then truncates to the configured limit.
func (s *Service) RecordView(ctx context.Context, item domain.RecentItem) {
	if !s.flags.IsEnabled(featuresDomain.FeatureRecentlyViewed) {
		return
	}

	recent, err := s.store.RecentlyViewed(ctx)
	if err != nil {
		s.logger.Error("failed to read recently viewed", "error", err)
		recent = nil
	}

	updated := make([]domain.RecentItem, 0, len(recent)+1)
	item.ViewedAt = time.Now().UTC()
	updated = append(updated, item)
	for _, existing := range recent {
		if existing.ID != item.ID {
			updated = append(updated, existing)
		}
	}
	if len(updated) > s.recentLimit {
		updated = updated[:s.recentLimit]
	}

	if err := s.store.SaveRecentlyViewed(ctx, updated); err != nil {
		s.logger.Error("failed to save recently viewed", "error", err)
	}
}

// RecentlyViewed returns the device's recently-viewed list, most
// recent first.
func (s *Service) RecentlyViewed(ctx context.Context) []domain.RecentItem {
	if !s.flags.IsEnabled(featuresDomain.FeatureRecentlyViewed) {
		return nil
	}

	recent, err := s.store.RecentlyViewed(ctx)
	if err != nil {
		s.logger.Error("failed to read recently viewed", "error", err)
		return nil
	}
	return recent
}

// AddReview appends a review for the item.
func (s *Service) AddReview(ctx context.Context, itemID, userID string, rating int, comment string) bool {
	if !s.flags.IsEnabled(featuresDomain.FeatureToolReviews) {
		return false
	}

	reviews, err := s.store.Reviews(ctx, itemID)
	if err != nil {
		s.logger.Error("failed to read reviews", "item_id", itemID, "error", err)
		return false
	}

	reviews = append(reviews, domain.Review{
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.store.SaveReviews(ctx, itemID, reviews); err != nil {
		s.logger.Error("failed to save reviews", "item_id", itemID, "error", err)
		return false
	}
	return true
}

// Reviews returns all reviews for the item.
func (s *Service) Reviews(ctx context.Context, itemID string) []domain.Review {
	if !s.flags.IsEnabled(featuresDomain.FeatureToolReviews) {
		return nil
	}

	reviews, err := s.store.Reviews(ctx, itemID)
	if err != nil {
		s.logger.Error("failed to read reviews", "item_id", itemID, "error", err)
		return nil
	}
	return reviews
}

// AverageRating returns the arithmetic mean of all ratings for the
// item, rounded to one decimal place, or 0 when there are none.
func (s *Service) AverageRating(ctx context.Context, itemID string) float64 {
	reviews := s.Reviews(ctx, itemID)
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
