// Package handler provides the HTTP handlers for the reviews feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"review_backend/internal/api"
	"review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/feature/reviews/transport/http/dto"
	"review_backend/internal/feature/reviews/usecase"
	"review_backend/internal/platform/apperror"
	jwtmw "review_backend/internal/platform/jwt"
	"review_backend/internal/shared/pagination"
)

// ReviewUsecase defines the review operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReviewUsecase interface {
	ListForItem(ctx context.Context, itemID uint, page pagination.Page) ([]entity.Review, error)
	ListMine(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Review, error)
	Get(ctx context.Context, id uint) (*entity.Review, error)
	Create(ctx context.Context, actorID uint, in usecase.CreateInput) (*entity.Review, error)
	Update(ctx context.Context, actorID, id uint, in usecase.UpdateInput) (*entity.Review, error)
	Delete(ctx context.Context, actorID, id uint) error
}

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	uc ReviewUsecase
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(uc ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List handles GET /reviews?itemId=&page=&limit=.
func (h *ReviewHandler) List(c *gin.Context) {
	var q dto.ListReviewsQuery
	if !api.BindQuery(c, &q) {
		return
	}
	page := q.ToPage()
	reviews, err := h.uc.ListForItem(c.Request.Context(), q.ItemID, page)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewListRes{Page: page.Page, Limit: page.Limit, Reviews: dto.NewReviewResList(reviews)})
}

// ListMine handles GET /reviews/user/me.
func (h *ReviewHandler) ListMine(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	var q api.PageQuery
	if !api.BindQuery(c, &q) {
		return
	}
	page := q.ToPage()
	reviews, err := h.uc.ListMine(c.Request.Context(), identity.UserID, page)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewListRes{Page: page.Page, Limit: page.Limit, Reviews: dto.NewReviewResList(reviews)})
}

// Get handles GET /reviews/:id. The review is returned with its comments.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	review, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewDetailRes(review))
}

// Create handles POST /reviews.
// - 201 on success
// - 400 on invalid input or when the caller already reviewed the item
// - 404 when the item does not exist
func (h *ReviewHandler) Create(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateReviewReq
	if !api.BindJSON(c, &req) {
		return
	}
	review, err := h.uc.Create(c.Request.Context(), identity.UserID, usecase.CreateInput{
		ItemID:  req.ItemID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("review created", "review_id", review.ID, "item_id", review.ItemID, "user_id", identity.UserID)
	c.JSON(http.StatusCreated, dto.NewReviewRes(review))
}

// Update handles PUT /reviews/:id. Only the author may update.
func (h *ReviewHandler) Update(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	var req dto.UpdateReviewReq
	if !api.BindJSON(c, &req) {
		return
	}
	review, err := h.uc.Update(c.Request.Context(), identity.UserID, id, usecase.UpdateInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewRes(review))
}

// Delete handles DELETE /reviews/:id. Only the author may delete.
func (h *ReviewHandler) Delete(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), identity.UserID, id); err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("review deleted", "review_id", id, "user_id", identity.UserID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Review deleted"})
}
