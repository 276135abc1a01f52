// Package dto defines data transfer objects for the comments feature's HTTP transport layer.
package dto

import (
	"time"

	"review_backend/internal/api"
	"review_backend/internal/feature/comments/domain/entity"
)

// CreateCommentReq represents the request body for POST /comments.
type CreateCommentReq struct {
	ReviewID uint   `json:"reviewId" binding:"required,min=1"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
}

// UpdateCommentReq represents the request body for PUT /comments/:id.
type UpdateCommentReq struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentRes is the public view of a comment.
type CommentRes struct {
	ID        uint           `json:"id"`
	Content   string         `json:"content"`
	UserID    uint           `json:"userId"`
	ReviewID  uint           `json:"reviewId"`
	User      *api.AuthorRes `json:"user,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CommentListRes is one page of comments.
type CommentListRes struct {
	Page     int          `json:"page"`
	Limit    int          `json:"limit"`
	Comments []CommentRes `json:"comments"`
}

// NewCommentRes converts a domain comment.
func NewCommentRes(c *entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		ReviewID:  c.ReviewID,
		User:      api.NewAuthorRes(c.UserID, c.Author),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCommentResList converts a slice of comments, never returning nil.
func NewCommentResList(comments []entity.Comment) []CommentRes {
	out := make([]CommentRes, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentRes(&comments[i]))
	}
	return out
}
