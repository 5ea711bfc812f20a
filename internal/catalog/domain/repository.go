package domain

import "context"

// ToolRepository persists catalog tools.
type ToolRepository interface {
	// Get returns the tool by id, or nil when it does not exist.
	Get(ctx context.Context, id string) (*Tool, error)
	// List returns all tools.
	List(ctx context.Context) ([]Tool, error)
	// ListByCategory returns all tools in the category.
	ListByCategory(ctx context.Context, category string) ([]Tool, error)
	// Save inserts or updates the tool.
	Save(ctx context.Context, tool *Tool) error
	// IncrementViews bumps the tool's view counter.
	IncrementViews(ctx context.Context, id string) error
}
