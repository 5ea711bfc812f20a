// Package persistence provides the catalog's SQL-backed tool
// repositories.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/creatorhub/creatorhub/internal/catalog/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/database"
)

// SQLiteToolRepository stores catalog tools in SQLite. Tags are kept
// as a JSON array in a TEXT column.
type SQLiteToolRepository struct {
	db *sql.DB
}

// NewSQLiteToolRepository creates a new repository.
func NewSQLiteToolRepository(db *sql.DB) *SQLiteToolRepository {
	return &SQLiteToolRepository{db: db}
}

// Get returns the tool by id, or nil, nil when it does not exist.
func (r *SQLiteToolRepository) Get(ctx context.Context, id string) (*domain.Tool, error) {
	query := selectColumns + ` FROM tools WHERE id = ?`

	tool, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return tool, nil
}

// List returns all tools.
func (r *SQLiteToolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := selectColumns + ` FROM tools ORDER BY name`
	return r.queryTools(ctx, query)
}

// ListByCategory returns all tools in the category.
func (r *SQLiteToolRepository) ListByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	query := selectColumns + ` FROM tools WHERE category = ? ORDER BY views DESC`
	return r.queryTools(ctx, query, category)
}

// Save inserts or updates the tool.
func (r *SQLiteToolRepository) Save(ctx context.Context, tool *domain.Tool) error {
	tags, err := json.Marshal(tool.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	now := time.Now().UTC()
	if tool.CreatedAt.IsZero() {
		tool.CreatedAt = now
	}
	tool.UpdatedAt = now

	query := `
		INSERT INTO tools (id, name, company, description, category, pricing, url, tags, views, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			company = excluded.company,
			description = excluded.description,
			category = excluded.category,
			pricing = excluded.pricing,
			url = excluded.url,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		tool.ID, tool.Name, tool.Company, tool.Description, tool.Category,
		tool.Pricing, tool.URL, string(tags), tool.Views,
		tool.CreatedAt.Format(time.RFC3339), tool.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// IncrementViews bumps the tool's view counter.
func (r *SQLiteToolRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tools SET views = views + 1 WHERE id = ?`, id)
	return err
}

func (r *SQLiteToolRepository) queryTools(ctx context.Context, query string, args ...any) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *tool)
	}
	return tools, rows.Err()
}

const selectColumns = `SELECT id, name, company, description, category, pricing, url, tags, views, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	var (
		tool      domain.Tool
		tags      string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&tool.ID, &tool.Name, &tool.Company, &tool.Description,
		&tool.Category, &tool.Pricing, &tool.URL, &tags, &tool.Views,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &tool.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for tool %s: %w", tool.ID, err)
	}
	if tool.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	if tool.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, err
	}
	return &tool, nil
}

var _ domain.ToolRepository = (*SQLiteToolRepository)(nil)
