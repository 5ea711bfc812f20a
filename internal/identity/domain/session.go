// Package domain models the local sign-in session.
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the device's current signed-in user.
type Session struct {
	UserID     uuid.UUID `json:"user_id"`
	SignedInAt time.Time `json:"signed_in_at"`
}

// SessionRepository persists the device session.
type SessionRepository interface {
	// Load returns the current session, or nil when signed out.
	Load(ctx context.Context) (*Session, error)
	// Save persists the session.
	Save(ctx context.Context, session *Session) error
	// Delete removes the session. Deleting a missing session is not
	// an error.
	Delete(ctx context.Context) error
}
