package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/feature/comments/usecase"
	"review_backend/internal/platform/apperror"
	jwtmw "review_backend/internal/platform/jwt"
	"review_backend/internal/shared/ownership"
	"review_backend/internal/shared/pagination"
)

// mockCommentUsecase is a mock implementation of the CommentUsecase interface.
type mockCommentUsecase struct {
	ListForReviewFunc func(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error)
	ListMineFunc      func(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Comment, error)
	GetFunc           func(ctx context.Context, id uint) (*entity.Comment, error)
	CreateFunc        func(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error)
	UpdateFunc        func(ctx context.Context, actorID, id uint, content string) (*entity.Comment, error)
	DeleteFunc        func(ctx context.Context, actorID, id uint) error
}

func (m *mockCommentUsecase) ListForReview(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error) {
	if m.ListForReviewFunc != nil {
		return m.ListForReviewFunc(ctx, reviewID, page)
	}
	return nil, nil
}

func (m *mockCommentUsecase) ListMine(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Comment, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, actorID, page)
	}
	return nil, nil
}

func (m *mockCommentUsecase) Get(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrCommentNotFound
}

func (m *mockCommentUsecase) Create(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actorID, reviewID, content)
	}
	return &entity.Comment{ID: 1, UserID: actorID, ReviewID: reviewID, Content: content}, nil
}

func (m *mockCommentUsecase) Update(ctx context.Context, actorID, id uint, content string) (*entity.Comment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actorID, id, content)
	}
	return &entity.Comment{ID: id, UserID: actorID, Content: content}, nil
}

func (m *mockCommentUsecase) Delete(ctx context.Context, actorID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actorID, id)
	}
	return nil
}

const actorID = 7

func newRouter(uc CommentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.UseWireFieldNames()

	h := NewCommentHandler(uc)
	r := gin.New()
	r.GET("/comments/review/:reviewId", h.ListForReview)
	r.GET("/comments/:id", h.Get)

	authed := r.Group("/comments", func(c *gin.Context) {
		c.Set(jwtmw.ContextIdentity, jwtmw.Identity{UserID: actorID})
		c.Next()
	})
	authed.GET("/user/me", h.ListMine)
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
	return r
}

func serve(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockCreate     func(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			requestBody:    gin.H{"reviewId": 3, "content": "agreed"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing content",
			requestBody:    gin.H{"reviewId": 3},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":[{"field":"content","message":"is required"}]}`,
		},
		{
			name:        "unknown review",
			requestBody: gin.H{"reviewId": 99, "content": "hello"},
			mockCreate: func(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error) {
				return nil, usecase.ErrReviewNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Review not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(&mockCommentUsecase{CreateFunc: tt.mockCreate}), http.MethodPost, "/comments", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, float64(actorID), body["userId"])
			assert.Equal(t, float64(3), body["reviewId"])
		})
	}
}

func TestCommentHandler_UpdateDelete(t *testing.T) {
	t.Run("update by non-owner", func(t *testing.T) {
		uc := &mockCommentUsecase{UpdateFunc: func(ctx context.Context, actor, id uint, content string) (*entity.Comment, error) {
			return nil, ownership.Authorize(actor, actor+1, "update", "comment")
		}}
		w := serve(newRouter(uc), http.MethodPut, "/comments/2", gin.H{"content": "mine"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"not authorized to update this comment"}`, w.Body.String())
	})

	t.Run("update success", func(t *testing.T) {
		w := serve(newRouter(&mockCommentUsecase{}), http.MethodPut, "/comments/2", gin.H{"content": "edited"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete by non-owner", func(t *testing.T) {
		uc := &mockCommentUsecase{DeleteFunc: func(ctx context.Context, actor, id uint) error {
			return ownership.Authorize(actor, actor+1, "delete", "comment")
		}}
		w := serve(newRouter(uc), http.MethodDelete, "/comments/2", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"not authorized to delete this comment"}`, w.Body.String())
	})

	t.Run("delete success", func(t *testing.T) {
		w := serve(newRouter(&mockCommentUsecase{}), http.MethodDelete, "/comments/2", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Comment deleted"}`, w.Body.String())
	})
}

func TestCommentHandler_Reads(t *testing.T) {
	t.Run("for review", func(t *testing.T) {
		var gotReview uint
		uc := &mockCommentUsecase{ListForReviewFunc: func(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error) {
			gotReview = reviewID
			return []entity.Comment{{ID: 1, Content: "first", UserID: 2, ReviewID: reviewID, Author: "bob"}}, nil
		}}

		w := serve(newRouter(uc), http.MethodGet, "/comments/review/3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), gotReview)

		var body struct {
			Comments []map[string]any `json:"comments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Comments, 1)
		assert.Equal(t, map[string]any{"id": float64(2), "username": "bob"}, body.Comments[0]["user"])
	})

	t.Run("bad review id", func(t *testing.T) {
		w := serve(newRouter(&mockCommentUsecase{}), http.MethodGet, "/comments/review/x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid reviewId"}`, w.Body.String())
	})

	t.Run("mine", func(t *testing.T) {
		var gotActor uint
		uc := &mockCommentUsecase{ListMineFunc: func(ctx context.Context, actor uint, page pagination.Page) ([]entity.Comment, error) {
			gotActor = actor
			return nil, nil
		}}
		w := serve(newRouter(uc), http.MethodGet, "/comments/user/me?limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(actorID), gotActor)
		assert.JSONEq(t, `{"page":1,"limit":5,"comments":[]}`, w.Body.String())
	})

	t.Run("get missing", func(t *testing.T) {
		w := serve(newRouter(&mockCommentUsecase{}), http.MethodGet, "/comments/2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Comment not found"}`, w.Body.String())
	})
}
