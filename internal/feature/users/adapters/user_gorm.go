// Package adapters provides the gorm-backed credential store for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"review_backend/internal/feature/users/domain/entity"
	"review_backend/internal/feature/users/usecase"
	"review_backend/internal/platform/db"
)

// userGorm implements usecase.UserRepository on the users table.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm for the given connection.
func NewUserRepository(gdb *gorm.DB) *userGorm {
	return &userGorm{db: gdb}
}

func toEntity(m *db.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create inserts the user and copies the generated ID and timestamps back.
// A unique violation on email or username becomes usecase.ErrDuplicateUser.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	m := &db.User{Username: u.Username, Email: u.Email, Password: u.Password}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	u.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByEmail returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByID returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userGorm) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var m db.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// Delete removes the user. Reviews, their comments and the user's comments
// go with it through ON DELETE CASCADE.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
