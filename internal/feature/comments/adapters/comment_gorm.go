// Package adapters はcommentsフィーチャーのgormリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/feature/comments/usecase"
	"review_backend/internal/platform/db"
	"review_backend/internal/shared/pagination"
)

// commentGorm はCommentRepositoryインターフェースのgorm実装です。
type commentGorm struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentRepository は指定されたDB接続でcommentGormの新しいインスタンスを生成します。
func NewCommentRepository(gdb *gorm.DB) *commentGorm {
	return &commentGorm{db: gdb}
}

// ListForReview はレビューのコメントを古い順に返します。
func (r *commentGorm) ListForReview(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error) {
	return r.list(r.db.WithContext(ctx).Where("review_id = ?", reviewID), "created_at ASC, id ASC", page)
}

// ListByUser はユーザーのコメントを新しい順に返します。
func (r *commentGorm) ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]entity.Comment, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID), "created_at DESC, id DESC", page)
}

func (r *commentGorm) list(q *gorm.DB, order string, page pagination.Page) ([]entity.Comment, error) {
	var rows []db.Comment
	if err := q.Preload("User").
		Order(order).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Comment, 0, len(rows))
	for i := range rows {
		out = append(out, CommentFromModel(&rows[i]))
	}
	return out, nil
}

// FindByID は作成者を含むコメントを返します。
func (r *commentGorm) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var m db.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	out := CommentFromModel(&m)
	return &out, nil
}

// Create はコメントを挿入し、生成されたIDとタイムスタンプを書き戻します。
func (r *commentGorm) Create(ctx context.Context, comment *entity.Comment) error {
	if comment == nil {
		return errors.New("comment is nil")
	}
	m := &db.Comment{Content: comment.Content, UserID: comment.UserID, ReviewID: comment.ReviewID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

// Update は本文を保存します。
func (r *commentGorm) Update(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&db.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{"content": comment.Content, "updated_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	comment.UpdatedAt = now
	return nil
}

// Delete はコメントを削除します。
func (r *commentGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}

// ReviewExists はレビューが存在するかを返します。
func (r *commentGorm) ReviewExists(ctx context.Context, reviewID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Review{}).Where("id = ?", reviewID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
