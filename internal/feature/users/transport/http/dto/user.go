// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"review_backend/internal/feature/users/domain/entity"
)

// RegisterReq represents the request body for POST /users/register.
type RegisterReq struct {
	Username string              `json:"username" binding:"required,min=3,max=30,alphanum"`
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required,min=6,max=72"`
}

// LoginReq represents the request body for POST /users/login.
type LoginReq struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required"`
}

// UserRes is the public view of a user. It never includes the password hash.
type UserRes struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserRes converts a domain user into its public view.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
