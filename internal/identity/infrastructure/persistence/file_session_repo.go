// Package persistence stores the device session on disk.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/creatorhub/creatorhub/internal/identity/domain"
)

// FileSessionRepository implements domain.SessionRepository with a
// single JSON file.
type FileSessionRepository struct {
	filePath string
	mu       sync.RWMutex
}

// NewFileSessionRepository creates a file-based session repository.
func NewFileSessionRepository(filePath string) *FileSessionRepository {
	return &FileSessionRepository{filePath: filePath}
}

// Load retrieves the current session from the file.
// Returns nil, nil if no session file exists (signed out).
func (r *FileSessionRepository) Load(ctx context.Context) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save persists the session to the file.
func (r *FileSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	// Write with restrictive permissions (user read/write only)
	return os.WriteFile(r.filePath, data, 0600)
}

// Delete removes the session file.
func (r *FileSessionRepository) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.filePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var _ domain.SessionRepository = (*FileSessionRepository)(nil)
