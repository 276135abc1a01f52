package adapters

import (
	"gorm.io/gorm"

	commentadapters "review_backend/internal/feature/comments/adapters"
	commententity "review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/platform/db"
)

// ReviewFromModel converts a reviews row together with any preloaded author
// and comments.
func ReviewFromModel(m *db.Review) entity.Review {
	r := entity.Review{
		ID:        m.ID,
		Rating:    m.Rating,
		Content:   m.Content,
		UserID:    m.UserID,
		ItemID:    m.ItemID,
		Author:    m.User.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Comments != nil {
		r.Comments = make([]commententity.Comment, 0, len(m.Comments))
		for i := range m.Comments {
			r.Comments = append(r.Comments, commentadapters.CommentFromModel(&m.Comments[i]))
		}
	}
	return r
}

// PreloadDetail loads each review's author and its comments, oldest first,
// with their authors.
func PreloadDetail(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.User")
}
