// Package dto defines data transfer objects for the items feature's HTTP transport layer.
package dto

import (
	"time"

	"review_backend/internal/api"
	"review_backend/internal/feature/items/domain/entity"
	reviewdto "review_backend/internal/feature/reviews/transport/http/dto"
)

// ListItemsQuery binds GET /items query parameters.
type ListItemsQuery struct {
	Search   string `form:"search" binding:"max=100"`
	Category string `form:"category" binding:"max=100"`
	api.PageQuery
}

// CreateItemReq represents the request body for POST /items.
type CreateItemReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
}

// UpdateItemReq represents the request body for PUT /items/:id. Omitted fields are unchanged.
type UpdateItemReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
}

// ItemRes is an item in a listing.
type ItemRes struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	AverageRating *float64  `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ItemDetailRes is a single item with its reviews and their comments.
type ItemDetailRes struct {
	ItemRes
	Reviews []reviewdto.ReviewDetailRes `json:"reviews"`
}

// ItemListRes is one page of items.
type ItemListRes struct {
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Items []ItemRes `json:"items"`
}

// NewItemRes converts a domain item for listing.
func NewItemRes(it *entity.Item) ItemRes {
	return ItemRes{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Category:      it.Category,
		AverageRating: it.AverageRating,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// NewItemDetailRes converts a domain item with nested reviews.
func NewItemDetailRes(it *entity.Item) ItemDetailRes {
	out := ItemDetailRes{ItemRes: NewItemRes(it), Reviews: make([]reviewdto.ReviewDetailRes, 0, len(it.Reviews))}
	for i := range it.Reviews {
		out.Reviews = append(out.Reviews, reviewdto.NewReviewDetailRes(&it.Reviews[i]))
	}
	return out
}
