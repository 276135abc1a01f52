// Package handler provides the HTTP handlers for the items feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"review_backend/internal/api"
	"review_backend/internal/feature/items/domain/entity"
	"review_backend/internal/feature/items/transport/http/dto"
	"review_backend/internal/feature/items/usecase"
	"review_backend/internal/platform/apperror"
	"review_backend/internal/shared/pagination"
)

// ItemUsecase はアイテムに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ItemUsecase interface {
	List(ctx context.Context, filter usecase.ListFilter, page pagination.Page) ([]entity.Item, error)
	Get(ctx context.Context, id uint) (*entity.Item, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Item, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Item, error)
	Delete(ctx context.Context, id uint) error
}

// ItemHandler はアイテムに関するHTTPリクエストを処理します。
type ItemHandler struct {
	uc ItemUsecase
}

// NewItemHandler は新しい ItemHandler を作成します。
func NewItemHandler(uc ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List は GET /items を処理します。search・category・page・limit で絞り込みます。
func (h *ItemHandler) List(c *gin.Context) {
	var q dto.ListItemsQuery
	if !api.BindQuery(c, &q) {
		return
	}
	page := q.ToPage()
	items, err := h.uc.List(c.Request.Context(), usecase.ListFilter{Search: q.Search, Category: q.Category}, page)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	out := dto.ItemListRes{Page: page.Page, Limit: page.Limit, Items: make([]dto.ItemRes, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, dto.NewItemRes(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /items/:id を処理し、レビューとコメントを含むアイテムを返します。
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	item, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemDetailRes(item))
}

// Create は POST /items を処理します。
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemReq
	if !api.BindJSON(c, &req) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("item created", "item_id", item.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewItemRes(item))
}

// Update は PUT /items/:id を処理します。省略されたフィールドは変更されません。
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	var req dto.UpdateItemReq
	if !api.BindJSON(c, &req) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemRes(item))
}

// Delete は DELETE /items/:id を処理します。
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		apperror.Write(c, err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("item deleted", "item_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Item deleted"})
}
