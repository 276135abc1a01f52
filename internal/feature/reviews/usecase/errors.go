// Package usecase implements the business logic for the reviews feature.
package usecase

import "review_backend/internal/platform/apperror"

var (
	// ErrReviewNotFound is returned when no review has the requested ID.
	ErrReviewNotFound = apperror.NotFound("Review not found")

	// ErrItemNotFound is returned when a review targets an item that does not exist.
	ErrItemNotFound = apperror.NotFound("Item not found")

	// ErrAlreadyReviewed is returned when the user already has a review for the item.
	ErrAlreadyReviewed = apperror.New(apperror.KindConflict, "You have already reviewed this item.")

	// ErrEmptyUpdate is returned when an update carries neither rating nor content.
	ErrEmptyUpdate = apperror.Validation("rating or content is required")

	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = apperror.Validation("rating must be between 1 and 5")
)
