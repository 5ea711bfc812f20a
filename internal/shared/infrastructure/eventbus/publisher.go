// Package eventbus publishes engine events (search analytics, view
// tracking, billing transactions) to an external broker. The engine
// treats the bus as best-effort: a missing broker degrades to a no-op.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the wire format for all published events.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	UserID     string         `json:"user_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewEvent creates an event with a fresh id and timestamp.
func NewEvent(eventType, userID string, payload map[string]any) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		Payload:    payload,
	}
}

// Marshal serializes the event for transport.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events to the bus. The routing key is the event type.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

// Publish discards the event.
func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

// Close is a no-op.
func (NoopPublisher) Close() error { return nil }

var _ Publisher = NoopPublisher{}
