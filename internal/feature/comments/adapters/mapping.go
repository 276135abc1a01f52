package adapters

import (
	"review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/platform/db"
)

// CommentFromModel converts a comments row. Author is filled when the User
// association was preloaded.
func CommentFromModel(m *db.Comment) entity.Comment {
	return entity.Comment{
		ID:        m.ID,
		Content:   m.Content,
		UserID:    m.UserID,
		ReviewID:  m.ReviewID,
		Author:    m.User.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
