package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"review_backend/internal/feature/users/domain/entity"
)

// dummyHash is compared against when the email is unknown so that Login takes
// the same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the credential store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateUser when the email or
	// username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername returns ErrUserNotFound when no user has the username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has the ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Delete removes the user together with their reviews and comments.
	Delete(ctx context.Context, id uint) error
}

// TokenIssuer issues signed bearer tokens.
type TokenIssuer interface {
	GenerateToken(userID uint) (string, error)
}

// TokenRevoker remembers logged-out tokens until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

// Option customizes a userUsecase.
type Option func(*userUsecase)

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(u *userUsecase) { u.hashCost = cost }
}

// userUsecase implements registration, login and account management.
type userUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	revoker  TokenRevoker
	hashCost int
}

// NewUserUsecase creates a userUsecase.
func NewUserUsecase(users UserRepository, tokens TokenIssuer, revoker TokenRevoker, opts ...Option) *userUsecase {
	u := &userUsecase{
		users:    users,
		tokens:   tokens,
		revoker:  revoker,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a bcrypt-hashed password.
// The email check runs first so a reused email always reports ErrEmailTaken,
// whatever the username.
func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token.
// bcrypt runs even for unknown emails to avoid a timing oracle.
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if user == nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Profile returns the user with the given ID.
func (u *userUsecase) Profile(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Logout revokes the presented token until it would have expired anyway.
func (u *userUsecase) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	if err := u.revoker.Revoke(ctx, jti, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// DeleteAccount removes the user and everything they authored.
// Tokens issued to the user stop resolving because the identity no longer exists.
func (u *userUsecase) DeleteAccount(ctx context.Context, id uint) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
