package persistence

import (
	"context"

	"github.com/creatorhub/creatorhub/internal/features/application"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfigSource reads feature overrides from PostgreSQL.
type PostgresConfigSource struct {
	pool *pgxpool.Pool
}

// NewPostgresConfigSource creates a new source.
func NewPostgresConfigSource(pool *pgxpool.Pool) *PostgresConfigSource {
	return &PostgresConfigSource{pool: pool}
}

// Fetch returns all stored overrides.
func (s *PostgresConfigSource) Fetch(ctx context.Context) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx, `SELECT feature_id, enabled FROM feature_overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]bool)
	for rows.Next() {
		var (
			featureID string
			enabled   bool
		)
		if err := rows.Scan(&featureID, &enabled); err != nil {
			return nil, err
		}
		overrides[featureID] = enabled
	}
	return overrides, rows.Err()
}

var _ application.ConfigSource = (*PostgresConfigSource)(nil)
