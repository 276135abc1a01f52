// Package usecase implements the business logic for the comments feature.
package usecase

import "review_backend/internal/platform/apperror"

var (
	// ErrCommentNotFound is returned when no comment has the requested ID.
	ErrCommentNotFound = apperror.NotFound("Comment not found")

	// ErrReviewNotFound is returned when a comment targets a review that does not exist.
	ErrReviewNotFound = apperror.NotFound("Review not found")

	// ErrEmptyContent is returned when a comment would be saved blank.
	ErrEmptyContent = apperror.Validation("content must not be empty")
)
