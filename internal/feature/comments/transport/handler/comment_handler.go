// Package handler provides the HTTP handlers for the comments feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"review_backend/internal/api"
	"review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/feature/comments/transport/http/dto"
	"review_backend/internal/platform/apperror"
	jwtmw "review_backend/internal/platform/jwt"
	"review_backend/internal/shared/pagination"
)

// CommentUsecase defines the comment operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CommentUsecase interface {
	ListForReview(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error)
	ListMine(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Comment, error)
	Get(ctx context.Context, id uint) (*entity.Comment, error)
	Create(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error)
	Update(ctx context.Context, actorID, id uint, content string) (*entity.Comment, error)
	Delete(ctx context.Context, actorID, id uint) error
}

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func (h *CommentHandler) writePage(c *gin.Context, page pagination.Page, comments []entity.Comment) {
	c.JSON(http.StatusOK, dto.CommentListRes{
		Page:     page.Page,
		Limit:    page.Limit,
		Comments: dto.NewCommentResList(comments),
	})
}

// ListForReview handles GET /comments/review/:reviewId.
func (h *CommentHandler) ListForReview(c *gin.Context) {
	reviewID, err := api.PathID(c, "reviewId")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	var q api.PageQuery
	if !api.BindQuery(c, &q) {
		return
	}
	page := q.ToPage()
	comments, err := h.uc.ListForReview(c.Request.Context(), reviewID, page)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	h.writePage(c, page, comments)
}

// ListMine handles GET /comments/user/me.
func (h *CommentHandler) ListMine(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	var q api.PageQuery
	if !api.BindQuery(c, &q) {
		return
	}
	page := q.ToPage()
	comments, err := h.uc.ListMine(c.Request.Context(), identity.UserID, page)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	h.writePage(c, page, comments)
}

// Get handles GET /comments/:id.
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	comment, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentRes(comment))
}

// Create handles POST /comments.
func (h *CommentHandler) Create(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateCommentReq
	if !api.BindJSON(c, &req) {
		return
	}
	comment, err := h.uc.Create(c.Request.Context(), identity.UserID, req.ReviewID, req.Content)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("comment created", "comment_id", comment.ID, "review_id", comment.ReviewID, "user_id", identity.UserID)
	c.JSON(http.StatusCreated, dto.NewCommentRes(comment))
}

// Update handles PUT /comments/:id. Only the author may update.
func (h *CommentHandler) Update(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	var req dto.UpdateCommentReq
	if !api.BindJSON(c, &req) {
		return
	}
	comment, err := h.uc.Update(c.Request.Context(), identity.UserID, id, req.Content)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentRes(comment))
}

// Delete handles DELETE /comments/:id. Only the author may delete.
func (h *CommentHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Comment deleted"})
}
