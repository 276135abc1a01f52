// Package entity defines the domain entities for the items feature.
package entity

import (
	"math"
	"time"

	reviewentity "review_backend/internal/feature/reviews/domain/entity"
)

// Item is a reviewable thing. Items have no owner.
type Item struct {
	ID          uint
	Name        string
	Description *string
	Category    *string

	// AverageRating is the mean review rating rounded to two decimals,
	// nil when the item has no reviews. It is derived on read.
	AverageRating *float64

	// Reviews is populated only by detail reads, newest first.
	Reviews []reviewentity.Review

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AverageRating returns the mean of ratings rounded to two decimals, or nil
// for an empty slice.
func AverageRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*100) / 100
	return &avg
}
