// Package usecase implements the business logic for the users feature.
package usecase

import "review_backend/internal/platform/apperror"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, username or ID.
	ErrUserNotFound = apperror.NotFound("User not found")

	// ErrEmailTaken is returned by Register when the email is already registered.
	ErrEmailTaken = apperror.New(apperror.KindDuplicate, "Email already in use")

	// ErrUsernameTaken is returned by Register when the username is already registered.
	ErrUsernameTaken = apperror.New(apperror.KindDuplicate, "Username already in use")

	// ErrDuplicateUser is returned by the repository when a unique constraint
	// rejects an insert that raced past the pre-checks.
	ErrDuplicateUser = apperror.New(apperror.KindDuplicate, "Email or username already in use")

	// ErrInvalidCredentials is returned by Login for an unknown email and for a
	// wrong password alike.
	ErrInvalidCredentials = apperror.Validation("Invalid credentials")
)
