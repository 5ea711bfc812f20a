// Package persistence provides feature override sources backed by the
// primary database and by Redis.
package persistence

import (
	"context"
	"database/sql"

	"github.com/creatorhub/creatorhub/internal/features/application"
)

// SQLiteConfigSource reads feature overrides from SQLite.
type SQLiteConfigSource struct {
	db *sql.DB
}

// NewSQLiteConfigSource creates a new source.
func NewSQLiteConfigSource(db *sql.DB) *SQLiteConfigSource {
	return &SQLiteConfigSource{db: db}
}

// Fetch returns all stored overrides. An empty table yields an empty
// map, not an error.
func (s *SQLiteConfigSource) Fetch(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT feature_id, enabled FROM feature_overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]bool)
	for rows.Next() {
		var (
			featureID string
			enabled   int
		)
		if err := rows.Scan(&featureID, &enabled); err != nil {
			return nil, err
		}
		overrides[featureID] = enabled == 1
	}
	return overrides, rows.Err()
}

var _ application.ConfigSource = (*SQLiteConfigSource)(nil)
