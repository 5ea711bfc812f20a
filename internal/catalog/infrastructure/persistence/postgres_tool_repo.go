package persistence

import (
	"context"
	"time"

	"github.com/creatorhub/creatorhub/internal/catalog/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgresToolRepository stores catalog tools in PostgreSQL. Tags use
// a native TEXT[] column.
type PostgresToolRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresToolRepository creates a new repository.
func NewPostgresToolRepository(pool *pgxpool.Pool) *PostgresToolRepository {
	return &PostgresToolRepository{pool: pool}
}

// Get returns the tool by id, or nil, nil when it does not exist.
func (r *PostgresToolRepository) Get(ctx context.Context, id string) (*domain.Tool, error) {
	query := selectColumns + ` FROM tools WHERE id = $1`

	tool, err := r.scanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return tool, nil
}

// List returns all tools.
func (r *PostgresToolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := selectColumns + ` FROM tools ORDER BY name`
	return r.queryTools(ctx, query)
}

// ListByCategory returns all tools in the category.
func (r *PostgresToolRepository) ListByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	query := selectColumns + ` FROM tools WHERE category = $1 ORDER BY views DESC`
	return r.queryTools(ctx, query, category)
}

// Save inserts or updates the tool.
func (r *PostgresToolRepository) Save(ctx context.Context, tool *domain.Tool) error {
	now := time.Now().UTC()
	if tool.CreatedAt.IsZero() {
		tool.CreatedAt = now
	}
	tool.UpdatedAt = now

	query := `
		INSERT INTO tools (id, name, company, description, category, pricing, url, tags, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			company = EXCLUDED.company,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			pricing = EXCLUDED.pricing,
			url = EXCLUDED.url,
			tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		tool.ID, tool.Name, tool.Company, tool.Description, tool.Category,
		tool.Pricing, tool.URL, pq.Array(tool.Tags), tool.Views,
		tool.CreatedAt, tool.UpdatedAt,
	)
	return err
}

// IncrementViews bumps the tool's view counter.
func (r *PostgresToolRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE tools SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PostgresToolRepository) queryTools(ctx context.Context, query string, args ...any) ([]domain.Tool, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		tool, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *tool)
	}
	return tools, rows.Err()
}

func (r *PostgresToolRepository) scanRow(row pgx.Row) (*domain.Tool, error) {
	var tool domain.Tool
	err := row.Scan(&tool.ID, &tool.Name, &tool.Company, &tool.Description,
		&tool.Category, &tool.Pricing, &tool.URL, &tool.Tags, &tool.Views,
		&tool.CreatedAt, &tool.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

var _ domain.ToolRepository = (*PostgresToolRepository)(nil)
