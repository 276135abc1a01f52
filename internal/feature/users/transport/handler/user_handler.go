// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"review_backend/internal/api"
	"review_backend/internal/feature/users/domain/entity"
	"review_backend/internal/feature/users/transport/http/dto"
	"review_backend/internal/platform/apperror"
	jwtmw "review_backend/internal/platform/jwt"
)

// UserUsecase defines the account operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, id uint) (*entity.User, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	DeleteAccount(ctx context.Context, id uint) error
}

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users/register.
// - 201 with the public user on success
// - 400 with field errors on invalid input
// - 400 "Email already in use" / "Username already in use" on duplicates
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if !api.BindJSON(c, &req) {
		return
	}
	user, err := h.users.Register(c.Request.Context(), req.Username, string(req.Email), req.Password)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Login handles POST /users/login.
// The same "Invalid credentials" message covers unknown emails and wrong passwords.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if !api.BindJSON(c, &req) {
		return
	}
	token, err := h.users.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	user, err := h.users.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Logout handles POST /users/logout by revoking the presented token.
func (h *UserHandler) Logout(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	if err := h.users.Logout(c.Request.Context(), identity.TokenID, identity.ExpiresAt); err != nil {
		apperror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// DeleteMe handles DELETE /users/me. Reviews and comments by the user are removed with the account.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	identity, ok := jwtmw.MustIdentity(c)
	if !ok {
		return
	}
	if err := h.users.DeleteAccount(c.Request.Context(), identity.UserID); err != nil {
		apperror.Write(c, err)
		return
	}
	slog.Info("user deleted", "user_id", identity.UserID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Account deleted"})
}
