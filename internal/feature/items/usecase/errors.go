// Package usecase implements the business logic for the items feature.
package usecase

import "review_backend/internal/platform/apperror"

var (
	// ErrItemNotFound is returned when no item has the requested ID.
	ErrItemNotFound = apperror.NotFound("Item not found")

	// ErrEmptyName is returned when an item would be saved without a name.
	ErrEmptyName = apperror.Validation("name must not be empty")
)
