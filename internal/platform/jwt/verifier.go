package jwtmw

import (
	"github.com/golang-jwt/jwt/v5"

	"review_backend/internal/platform/apperror"
)

// Verify parses tokenStr and checks signature, algorithm and expiry.
// Malformed, tampered and expired tokens all yield ErrInvalidToken so callers
// cannot tell which check failed.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.KindForbidden, ErrInvalidToken.Message, err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, apperror.Wrap(apperror.KindForbidden, ErrInvalidToken.Message, err)
	}
	return claims, nil
}
