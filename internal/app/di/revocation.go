package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	userusecase "review_backend/internal/feature/users/usecase"
	jwtmw "review_backend/internal/platform/jwt"
	"review_backend/internal/platform/revocation"
)

// RevocationStore records logged-out tokens and answers the auth gate.
type RevocationStore interface {
	userusecase.TokenRevoker
	jwtmw.RevocationChecker
}

// NewRevocationStore creates a RevocationStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the revoked_tokens table.
func NewRevocationStore(rdb *redis.Client, db *gorm.DB) RevocationStore {
	if rdb != nil {
		return revocation.NewRevocationRedis(rdb, "revoked")
	}
	return revocation.NewRevocationGorm(db)
}
