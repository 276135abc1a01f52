// Package entity defines the domain entities for the comments feature.
package entity

import "time"

// Comment is a reply to a review.
type Comment struct {
	ID       uint
	Content  string
	UserID   uint
	ReviewID uint

	// Author is the commenter's username. Empty when not loaded.
	Author string

	CreatedAt time.Time
	UpdatedAt time.Time
}
