// Package application tracks the device's sign-in state and notifies
// interested components when it changes.
package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/creatorhub/creatorhub/internal/identity/domain"
	"github.com/google/uuid"
)

// Listener receives sign-in state transitions. OnSignIn fires after
// the session is persisted; OnSignOut fires after it is removed.
type Listener interface {
	OnSignIn(ctx context.Context, userID uuid.UUID)
	OnSignOut(ctx context.Context)
}

// Watcher owns the device session and fans out auth transitions to
// registered listeners, in registration order.
type Watcher struct {
	sessions domain.SessionRepository
	logger   *slog.Logger

	mu        sync.RWMutex
	current   *domain.Session
	listeners []Listener
}

// NewWatcher creates a watcher over the session repository.
func NewWatcher(sessions domain.SessionRepository, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{sessions: sessions, logger: logger}
}

// Subscribe registers a listener for future transitions.
func (w *Watcher) Subscribe(listener Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, listener)
}

// Restore loads a persisted session from a previous run and, when one
// exists, replays OnSignIn so caches warm up.
func (w *Watcher) Restore(ctx context.Context) error {
	session, err := w.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	w.mu.Lock()
	w.current = session
	w.mu.Unlock()

	w.logger.Info("restored session", "user_id", session.UserID)
	for _, listener := range w.snapshot() {
		listener.OnSignIn(ctx, session.UserID)
	}
	return nil
}

// SignIn persists the session for userID and notifies listeners.
func (w *Watcher) SignIn(ctx context.Context, userID uuid.UUID) error {
	session := &domain.Session{UserID: userID, SignedInAt: time.Now().UTC()}
	if err := w.sessions.Save(ctx, session); err != nil {
		return err
	}

	w.mu.Lock()
	w.current = session
	w.mu.Unlock()

	w.logger.Info("user signed in", "user_id", userID)
	for _, listener := range w.snapshot() {
		listener.OnSignIn(ctx, userID)
	}
	return nil
}

// SignOut removes the session and notifies listeners. Signing out
// while already signed out is a no-op.
func (w *Watcher) SignOut(ctx context.Context) error {
	w.mu.Lock()
	wasSignedIn := w.current != nil
	w.current = nil
	w.mu.Unlock()

	if !wasSignedIn {
		return nil
	}

	if err := w.sessions.Delete(ctx); err != nil {
		return err
	}

	w.logger.Info("user signed out")
	for _, listener := range w.snapshot() {
		listener.OnSignOut(ctx)
	}
	return nil
}

// Current returns the signed-in user id, or nil when signed out.
func (w *Watcher) Current() *uuid.UUID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.current == nil {
		return nil
	}
	id := w.current.UserID
	return &id
}

func (w *Watcher) snapshot() []Listener {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Listener(nil), w.listeners...)
}
