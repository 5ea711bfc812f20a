// Package domain holds the personalization records kept per user or
// per device: favorites, the recently-viewed ring, and reviews.
package domain

import "time"

// RecentItem is one entry of the recently-viewed list.
type RecentItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	ViewedAt time.Time `json:"viewed_at"`
}

// Review is one user's rating and comment for an item.
type Review struct {
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
}
