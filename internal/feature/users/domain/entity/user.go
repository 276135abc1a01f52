// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint

	// Username is the public display name. It must be unique across all users.
	Username string

	// Email is used for login. It must be unique across all users.
	Email string

	// Password is the bcrypt hash of the user's password.
	// It never holds plaintext and is never returned to callers.
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}
