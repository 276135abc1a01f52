// Package router assembles the gin engine: middleware, public routes and
// routes behind the bearer-token gate.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	commenthandler "review_backend/internal/feature/comments/transport/handler"
	itemhandler "review_backend/internal/feature/items/transport/handler"
	reviewhandler "review_backend/internal/feature/reviews/transport/handler"
	userhandler "review_backend/internal/feature/users/transport/handler"
	"review_backend/internal/platform/apperror"
	"review_backend/internal/platform/http/handler"
	"review_backend/internal/platform/http/middleware"
)

// Handlers groups every feature handler mounted by NewRouter.
type Handlers struct {
	Health   *handler.HealthHandler
	Users    *userhandler.UserHandler
	Items    *itemhandler.ItemHandler
	Reviews  *reviewhandler.ReviewHandler
	Comments *commenthandler.CommentHandler
}

// Options carries the cross-cutting middleware configuration.
type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	// AuthThrottle, when set, guards register and login.
	AuthThrottle gin.HandlerFunc
}

// NewRouter builds the engine. authRequired is the bearer-token gate.
func NewRouter(h Handlers, authRequired gin.HandlerFunc, opts Options) *gin.Engine {
	apperror.UseWireFieldNames()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), apperror.Recovery())
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}
	r.NoRoute(func(c *gin.Context) {
		apperror.Write(c, apperror.NotFound("route not found"))
	})

	throttle := opts.AuthThrottle
	if throttle == nil {
		throttle = func(c *gin.Context) { c.Next() }
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	users := r.Group("/users")
	users.POST("/register", throttle, h.Users.Register)
	users.POST("/login", throttle, h.Users.Login)

	r.GET("/items", h.Items.List)
	r.GET("/items/:id", h.Items.Get)
	r.GET("/reviews", h.Reviews.List)
	r.GET("/reviews/:id", h.Reviews.Get)
	r.GET("/comments/review/:reviewId", h.Comments.ListForReview)
	r.GET("/comments/:id", h.Comments.Get)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/users/me", h.Users.Me)
		auth.DELETE("/users/me", h.Users.DeleteMe)
		auth.POST("/users/logout", h.Users.Logout)

		auth.POST("/items", h.Items.Create)
		auth.PUT("/items/:id", h.Items.Update)
		auth.DELETE("/items/:id", h.Items.Delete)

		auth.POST("/reviews", h.Reviews.Create)
		auth.PUT("/reviews/:id", h.Reviews.Update)
		auth.DELETE("/reviews/:id", h.Reviews.Delete)
		auth.GET("/reviews/user/me", h.Reviews.ListMine)

		auth.POST("/comments", h.Comments.Create)
		auth.PUT("/comments/:id", h.Comments.Update)
		auth.DELETE("/comments/:id", h.Comments.Delete)
		auth.GET("/comments/user/me", h.Comments.ListMine)
	}

	return r
}
