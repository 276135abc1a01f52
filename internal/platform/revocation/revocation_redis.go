// Package revocation stores logged-out token IDs until the tokens expire.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRedis keeps revoked token IDs as expiring Redis keys.
type RevocationRedis struct {
	client *redis.Client
	prefix string
}

// NewRevocationRedis creates a RevocationRedis. An empty prefix defaults to "revoked".
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	if prefix == "" {
		prefix = "revoked"
	}
	return &RevocationRedis{client: client, prefix: prefix}
}

func (r *RevocationRedis) key(jti string) string {
	return fmt.Sprintf("%s:%s", r.prefix, jti)
}

// Revoke marks jti as revoked until expiresAt. Already-expired tokens are ignored.
func (r *RevocationRedis) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(jti), 1, ttl).Err()
}

// IsRevoked reports whether jti was revoked and has not yet expired.
func (r *RevocationRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, r.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
