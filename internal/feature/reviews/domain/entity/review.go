// Package entity defines the domain entities for the reviews feature.
package entity

import (
	"time"

	commententity "review_backend/internal/feature/comments/domain/entity"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of an item. A user reviews an item at most once.
type Review struct {
	ID      uint
	Rating  int
	Content string
	UserID  uint
	ItemID  uint

	// Author is the reviewer's username. Empty when not loaded.
	Author string

	// Comments is populated only by detail reads, oldest first.
	Comments []commententity.Comment

	CreatedAt time.Time
	UpdatedAt time.Time
}
