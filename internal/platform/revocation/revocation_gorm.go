package revocation

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"review_backend/internal/platform/db"
)

// RevocationGorm keeps revoked token IDs in the revoked_tokens table.
// It is the fallback when Redis is not configured.
type RevocationGorm struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRevocationGorm creates a RevocationGorm.
func NewRevocationGorm(gdb *gorm.DB) *RevocationGorm {
	return &RevocationGorm{db: gdb, now: time.Now}
}

// Revoke records jti until expiresAt. Revoking twice is a no-op.
func (r *RevocationGorm) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if !expiresAt.After(r.now()) {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

// IsRevoked reports whether jti was revoked and has not yet expired.
func (r *RevocationGorm) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, r.now()).
		Count(&count).Error
	return count > 0, err
}

// DeleteExpired purges rows whose tokens have expired and returns how many were removed.
func (r *RevocationGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&db.RevokedToken{})
	return result.RowsAffected, result.Error
}
