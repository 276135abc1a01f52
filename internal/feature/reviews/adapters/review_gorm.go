// Package adapters はreviewsフィーチャーのgormリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/feature/reviews/usecase"
	"review_backend/internal/platform/db"
	"review_backend/internal/shared/pagination"
)

// reviewGorm はReviewRepositoryインターフェースのgorm実装です。
type reviewGorm struct {
	db *gorm.DB
}

var _ usecase.ReviewRepository = (*reviewGorm)(nil)

// NewReviewRepository は指定されたDB接続でreviewGormの新しいインスタンスを生成します。
func NewReviewRepository(gdb *gorm.DB) *reviewGorm {
	return &reviewGorm{db: gdb}
}

// ListForItem はアイテムのレビューを新しい順に返します。itemIDが0の場合はすべてのレビューを返します。
func (r *reviewGorm) ListForItem(ctx context.Context, itemID uint, page pagination.Page) ([]entity.Review, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if itemID != 0 {
		q = q.Where("item_id = ?", itemID)
	}
	return r.list(q, page)
}

// ListByUser はユーザーのレビューを新しい順に返します。
func (r *reviewGorm) ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]entity.Review, error) {
	q := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID)
	return r.list(q, page)
}

func (r *reviewGorm) list(q *gorm.DB, page pagination.Page) ([]entity.Review, error) {
	var rows []db.Review
	if err := q.
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Review, 0, len(rows))
	for i := range rows {
		out = append(out, ReviewFromModel(&rows[i]))
	}
	return out, nil
}

// FindByID は作成者とコメントを含むレビューを返します。
func (r *reviewGorm) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var m db.Review
	if err := PreloadDetail(r.db.WithContext(ctx)).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReviewNotFound
		}
		return nil, err
	}
	out := ReviewFromModel(&m)
	return &out, nil
}

// FindByUserAndItem はユーザーがアイテムに書いたレビューを返します。
func (r *reviewGorm) FindByUserAndItem(ctx context.Context, userID, itemID uint) (*entity.Review, error) {
	var m db.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReviewNotFound
		}
		return nil, err
	}
	out := ReviewFromModel(&m)
	return &out, nil
}

// Create はレビューを挿入します。(user_id, item_id) の一意制約違反は ErrAlreadyReviewed になります。
func (r *reviewGorm) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errors.New("review is nil")
	}
	m := &db.Review{Rating: review.Rating, Content: review.Content, UserID: review.UserID, ItemID: review.ItemID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrAlreadyReviewed
		}
		return err
	}
	review.ID = m.ID
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt
	return nil
}

// Update は評価と本文を保存します。
func (r *reviewGorm) Update(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&db.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":     review.Rating,
			"content":    review.Content,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReviewNotFound
	}
	review.UpdatedAt = now
	return nil
}

// Delete はレビューを削除します。コメントはON DELETE CASCADEで削除されます。
func (r *reviewGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReviewNotFound
	}
	return nil
}

// ItemExists はアイテムが存在するかを返します。
func (r *reviewGorm) ItemExists(ctx context.Context, itemID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Item{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
