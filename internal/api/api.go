// Package api holds wire types and request helpers shared by every HTTP handler.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"review_backend/internal/platform/apperror"
	"review_backend/internal/shared/pagination"
)

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthorRes identifies the user who wrote a review or comment.
type AuthorRes struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// NewAuthorRes returns nil when the author's username was not loaded.
func NewAuthorRes(id uint, username string) *AuthorRes {
	if username == "" {
		return nil
	}
	return &AuthorRes{ID: id, Username: username}
}

// PageQuery binds ?page=&limit= with defaults and bounds.
type PageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// ToPage converts the bound query into a pagination.Page.
func (q PageQuery) ToPage() pagination.Page {
	return pagination.New(q.Page, q.Limit)
}

// PathID binds a positive numeric path parameter such as /reviews/:id.
func PathID(c *gin.Context, name string) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil || id == 0 {
		return 0, apperror.Validation("invalid " + name)
	}
	return id, nil
}

// BindJSON binds the request body into dst, writing a 400 and returning false on failure.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperror.Write(c, apperror.FromBinding(err, "invalid request body"))
		return false
	}
	return true
}

// BindQuery binds the query string into dst, writing a 400 and returning false on failure.
func BindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		apperror.Write(c, apperror.FromBinding(err, "invalid query parameters"))
		return false
	}
	return true
}
