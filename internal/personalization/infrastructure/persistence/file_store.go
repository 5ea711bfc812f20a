// Package persistence provides the file-backed personalization store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/creatorhub/creatorhub/internal/personalization/domain"
)

// FileStore implements domain.Store with one JSON file per collection
// under a data directory. Favorites and reviews are keyed per user and
// per item; the recently-viewed list is a single device-wide file.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Favorites returns the user's favorite item ids.
// Returns an empty list if no file exists yet.
func (s *FileStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	var favorites []string
	if err := s.read(s.favoritesPath(userID), &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// SaveFavorites persists the user's favorite item ids.
func (s *FileStore) SaveFavorites(ctx context.Context, userID string, itemIDs []string) error {
	return s.write(s.favoritesPath(userID), itemIDs)
}

// RecentlyViewed returns the device's recently-viewed items.
func (s *FileStore) RecentlyViewed(ctx context.Context) ([]domain.RecentItem, error) {
	var items []domain.RecentItem
	if err := s.read(s.recentPath(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveRecentlyViewed persists the device's recently-viewed items.
func (s *FileStore) SaveRecentlyViewed(ctx context.Context, items []domain.RecentItem) error {
	return s.write(s.recentPath(), items)
}

// Reviews returns all reviews for the item.
func (s *FileStore) Reviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := s.read(s.reviewsPath(itemID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SaveReviews persists all reviews for the item.
func (s *FileStore) SaveReviews(ctx context.Context, itemID string, reviews []domain.Review) error {
	return s.write(s.reviewsPath(itemID), reviews)
}

func (s *FileStore) favoritesPath(userID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("favorites_%s.json", userID))
}

func (s *FileStore) recentPath() string {
	return filepath.Join(s.dir, "recently_viewed.json")
}

func (s *FileStore) reviewsPath(itemID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("reviews_%s.json", itemID))
}

func (s *FileStore) read(path string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // No file yet
		}
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *FileStore) write(path string, in any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	// Write with restrictive permissions (user read/write only)
	return os.WriteFile(path, data, 0600)
}

var _ domain.Store = (*FileStore)(nil)
