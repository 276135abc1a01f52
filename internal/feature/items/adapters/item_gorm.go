// Package adapters はitemsフィーチャーのgormリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"review_backend/internal/feature/items/domain/entity"
	"review_backend/internal/feature/items/usecase"
	reviewadapters "review_backend/internal/feature/reviews/adapters"
	reviewentity "review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/platform/db"
	"review_backend/internal/shared/pagination"
)

// itemGorm はItemRepositoryインターフェースのgorm実装です。
type itemGorm struct {
	db *gorm.DB
}

var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemRepository は指定されたDB接続でitemGormの新しいインスタンスを生成します。
func NewItemRepository(gdb *gorm.DB) *itemGorm {
	return &itemGorm{db: gdb}
}

func toEntity(m *db.Item) entity.Item {
	return entity.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// List はID昇順でページ分割されたアイテムを返します。各アイテムには平均評価が付与されます。
func (r *itemGorm) List(ctx context.Context, filter usecase.ListFilter, page pagination.Page) ([]entity.Item, error) {
	q := r.db.WithContext(ctx).Model(&db.Item{})
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?)", like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var rows []db.Item
	if err := q.Order("id ASC").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entity.Item, 0, len(rows))
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		items = append(items, toEntity(&rows[i]))
		ids = append(ids, rows[i].ID)
	}
	if len(ids) == 0 {
		return items, nil
	}

	ratings, err := r.ratingsByItem(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].AverageRating = entity.AverageRating(ratings[items[i].ID])
	}
	return items, nil
}

type ratingRow struct {
	ItemID uint
	Rating int
}

// ratingsByItem は指定されたアイテムの評価値をアイテムIDごとにまとめて返します。
func (r *itemGorm) ratingsByItem(ctx context.Context, ids []uint) (map[uint][]int, error) {
	var rows []ratingRow
	if err := r.db.WithContext(ctx).
		Model(&db.Review{}).
		Select("item_id, rating").
		Where("item_id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint][]int, len(ids))
	for _, row := range rows {
		out[row.ItemID] = append(out[row.ItemID], row.Rating)
	}
	return out, nil
}

// FindByID はレビュー(新しい順)とそのコメント(古い順)を含むアイテムを返します。
func (r *itemGorm) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var m db.Item
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}

	var reviews []db.Review
	if err := reviewadapters.PreloadDetail(r.db.WithContext(ctx)).
		Where("item_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	item := toEntity(&m)
	item.Reviews = make([]reviewentity.Review, 0, len(reviews))
	ratings := make([]int, 0, len(reviews))
	for i := range reviews {
		item.Reviews = append(item.Reviews, reviewadapters.ReviewFromModel(&reviews[i]))
		ratings = append(ratings, reviews[i].Rating)
	}
	item.AverageRating = entity.AverageRating(ratings)
	return &item, nil
}

// Create はアイテムを挿入し、生成されたIDとタイムスタンプを書き戻します。
func (r *itemGorm) Create(ctx context.Context, item *entity.Item) error {
	if item == nil {
		return errors.New("item is nil")
	}
	m := &db.Item{Name: item.Name, Description: item.Description, Category: item.Category}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return nil
}

// Update は名前・説明・カテゴリを保存します。
func (r *itemGorm) Update(ctx context.Context, item *entity.Item) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&db.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"category":    item.Category,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	item.UpdatedAt = now
	return nil
}

// Delete はアイテムを削除します。レビューとコメントはON DELETE CASCADEで削除されます。
func (r *itemGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// ExistsByName は同名のアイテムが存在するかを返します。
func (r *itemGorm) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Item{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
