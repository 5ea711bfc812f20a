// Package application holds the feature flag registry gating every
// optional behavior in the product.
package application

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/creatorhub/creatorhub/internal/features/domain"
)

// ConfigSource fetches the remote feature override document. A nil
// map with a nil error means no overrides exist.
type ConfigSource interface {
	Fetch(ctx context.Context) (map[string]bool, error)
}

// Registry maps feature ids to their enabled state. All compiled-in
// features default to enabled; a remote override document can toggle
// them. Unknown remote keys are ignored so untrusted remote data can
// never introduce new flags, and unknown ids always read as disabled.
type Registry struct {
	source ConfigSource
	logger *slog.Logger

	mu    sync.RWMutex
	flags map[string]bool

	initOnce sync.Once
}

// NewRegistry creates a registry seeded with defaults. The source may
// be nil, in which case Initialize keeps the defaults.
func NewRegistry(source ConfigSource, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	flags := make(map[string]bool)
	for _, id := range domain.KnownFeatureIDs() {
		flags[id] = true
	}

	return &Registry{source: source, logger: logger, flags: flags}
}

// Initialize merges the remote override document into the defaults.
// It runs at most once per registry; a fetch failure or an absent
// document leaves the defaults untouched and is not fatal.
func (r *Registry) Initialize(ctx context.Context) {
	r.initOnce.Do(func() {
		if r.source == nil {
			return
		}

		overrides, err := r.source.Fetch(ctx)
		if err != nil {
			r.logger.Warn("could not load feature config, using defaults", "error", err)
			return
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		applied := 0
		for id, enabled := range overrides {
			if _, known := r.flags[id]; !known {
				continue
			}
			r.flags[id] = enabled
			applied++
		}

		r.logger.Info("feature config loaded",
			"overrides", len(overrides),
			"applied", applied,
		)
	})
}

// IsEnabled reports whether the feature is active. Ids outside the
// compiled-in set are always disabled.
func (r *Registry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flags[id]
}

// Snapshot returns all flags sorted by id.
func (r *Registry) Snapshot() []domain.Flag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flags := make([]domain.Flag, 0, len(r.flags))
	for id, enabled := range r.flags {
		flags = append(flags, domain.Flag{ID: id, Enabled: enabled})
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].ID < flags[j].ID })
	return flags
}
