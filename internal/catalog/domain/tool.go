// Package domain holds the catalog's tool model.
package domain

import "time"

// Tool is one entry in the creator-tools catalog.
type Tool struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Pricing     string    `json:"pricing"`
	URL         string    `json:"url"`
	Tags        []string  `json:"tags,omitempty"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
