package jwtmw

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"review_backend/internal/feature/users/domain/entity"
	"review_backend/internal/feature/users/usecase"
	"review_backend/internal/platform/apperror"
)

var (
	// ErrMissingToken is returned when the Authorization header carries no bearer token.
	ErrMissingToken = apperror.New(apperror.KindUnauthenticated, "missing bearer token")

	// ErrInvalidToken is returned for malformed, tampered, expired or revoked tokens.
	ErrInvalidToken = apperror.Forbidden("invalid or expired token")

	// ErrUnknownUser is returned when a valid token names a user that no longer exists.
	ErrUnknownUser = apperror.New(apperror.KindUnauthenticated, "user not found")
)

// TokenVerifier verifies a raw token string.
type TokenVerifier interface {
	Verify(tokenStr string) (*Claims, error)
}

// UserFinder resolves a user by ID against the live credential store.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// RevocationChecker reports whether a token ID was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Identity is the authenticated caller, threaded explicitly into usecases.
type Identity struct {
	UserID    uint
	Username  string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// Authenticator turns an Authorization header into an Identity.
// It never mutates state.
type Authenticator struct {
	tokens  TokenVerifier
	users   UserFinder
	revoked RevocationChecker
}

// NewAuthenticator creates an Authenticator. revoked may be nil, in which case
// logout revocation is not checked.
func NewAuthenticator(tokens TokenVerifier, users UserFinder, revoked RevocationChecker) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, revoked: revoked}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// Authenticate verifies the bearer token in header and resolves its user.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (Identity, error) {
	tokenStr, ok := BearerToken(header)
	if !ok {
		return Identity{}, ErrMissingToken
	}

	claims, err := a.tokens.Verify(tokenStr)
	if err != nil {
		return Identity{}, err
	}

	if a.revoked != nil && claims.ID != "" {
		revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Identity{}, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return Identity{}, ErrInvalidToken
		}
	}

	userID, _ := claims.UserID()
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return Identity{}, ErrUnknownUser
		}
		return Identity{}, fmt.Errorf("failed to resolve user: %w", err)
	}

	identity := Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
