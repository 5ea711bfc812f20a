// Package generator talks to the query-expansion assistant used by
// catalog search. The remote service turns a free-text query into
// search keywords; a static expander stands in when it is down.
package generator

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the assistant cannot be reached,
// including while the circuit breaker is open.
var ErrUnavailable = errors.New("generator unavailable")

// Expansion is the assistant's reading of a query.
type Expansion struct {
	Intent   string   `json:"intent"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category,omitempty"`
}

// Expander expands a free-text query into search keywords.
type Expander interface {
	ExpandQuery(ctx context.Context, query string) ([]string, error)
}
