// Package jwtmw issues and verifies bearer tokens and provides the gin
// middleware that authenticates requests with them.
package jwtmw

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration is the token lifetime used when none is configured.
const DefaultExpiration = time.Hour

// Claims are the registered claims carried by every token.
// Subject holds the user ID in decimal; ID is a random token identifier used for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid subject claim")
	}
	return uint(id), nil
}

// Service signs and verifies HS256 tokens with a server-held secret.
type Service struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewService creates a token service. A non-positive expiration falls back to DefaultExpiration.
func NewService(secret string, expiration time.Duration) *Service {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed token for userID that expires after the configured window.
func (s *Service) GenerateToken(userID uint) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
