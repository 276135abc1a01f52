// Package dto defines data transfer objects for the reviews feature's HTTP transport layer.
package dto

import (
	"time"

	"review_backend/internal/api"
	commentdto "review_backend/internal/feature/comments/transport/http/dto"
	"review_backend/internal/feature/reviews/domain/entity"
)

// ListReviewsQuery binds GET /reviews query parameters. ItemID 0 lists every review.
type ListReviewsQuery struct {
	ItemID uint `form:"itemId" binding:"omitempty,min=1"`
	api.PageQuery
}

// CreateReviewReq represents the request body for POST /reviews.
type CreateReviewReq struct {
	ItemID  uint   `json:"itemId" binding:"required,min=1"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// UpdateReviewReq represents the request body for PUT /reviews/:id. Omitted fields are unchanged.
type UpdateReviewReq struct {
	Rating  *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Content *string `json:"content" binding:"omitempty,min=1,max=5000"`
}

// ReviewRes is the public view of a review.
type ReviewRes struct {
	ID        uint           `json:"id"`
	Rating    int            `json:"rating"`
	Content   string         `json:"content"`
	UserID    uint           `json:"userId"`
	ItemID    uint           `json:"itemId"`
	User      *api.AuthorRes `json:"user,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ReviewDetailRes is a review with its comments, oldest first.
type ReviewDetailRes struct {
	ReviewRes
	Comments []commentdto.CommentRes `json:"comments"`
}

// ReviewListRes is one page of reviews.
type ReviewListRes struct {
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Reviews []ReviewRes `json:"reviews"`
}

// NewReviewRes converts a domain review without its comments.
func NewReviewRes(r *entity.Review) ReviewRes {
	return ReviewRes{
		ID:        r.ID,
		Rating:    r.Rating,
		Content:   r.Content,
		UserID:    r.UserID,
		ItemID:    r.ItemID,
		User:      api.NewAuthorRes(r.UserID, r.Author),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewReviewDetailRes converts a domain review with its comments.
func NewReviewDetailRes(r *entity.Review) ReviewDetailRes {
	return ReviewDetailRes{ReviewRes: NewReviewRes(r), Comments: commentdto.NewCommentResList(r.Comments)}
}

// NewReviewResList converts a slice of reviews, never returning nil.
func NewReviewResList(reviews []entity.Review) []ReviewRes {
	out := make([]ReviewRes, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewRes(&reviews[i]))
	}
	return out
}
