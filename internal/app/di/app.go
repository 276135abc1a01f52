// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"review_backend/internal/app/router"
	commentadapters "review_backend/internal/feature/comments/adapters"
	commenthandler "review_backend/internal/feature/comments/transport/handler"
	commentusecase "review_backend/internal/feature/comments/usecase"
	itemadapters "review_backend/internal/feature/items/adapters"
	itemhandler "review_backend/internal/feature/items/transport/handler"
	itemusecase "review_backend/internal/feature/items/usecase"
	reviewadapters "review_backend/internal/feature/reviews/adapters"
	reviewhandler "review_backend/internal/feature/reviews/transport/handler"
	reviewusecase "review_backend/internal/feature/reviews/usecase"
	useradapters "review_backend/internal/feature/users/adapters"
	userhandler "review_backend/internal/feature/users/transport/handler"
	userusecase "review_backend/internal/feature/users/usecase"
	"review_backend/internal/platform/config"
	"review_backend/internal/platform/http/handler"
	jwtmw "review_backend/internal/platform/jwt"
	"review_backend/internal/shared/ratelimiter"
)

// App is the fully wired API.
type App struct {
	Router      *gin.Engine
	Revocations RevocationStore

	// Limiter is nil when throttling is disabled.
	Limiter *ratelimiter.RateLimiter
}

// NewApp wires repositories, usecases and handlers into a router.
// rdb may be nil, in which case logouts are stored in the database.
func NewApp(cfg config.Config, gdb *gorm.DB, rdb *redis.Client, logger *slog.Logger, userOpts ...userusecase.Option) (*App, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Repository
	userRepo := useradapters.NewUserRepository(gdb)
	itemRepo := itemadapters.NewItemRepository(gdb)
	reviewRepo := reviewadapters.NewReviewRepository(gdb)
	commentRepo := commentadapters.NewCommentRepository(gdb)
	revocations := NewRevocationStore(rdb, gdb)

	// Token
	tokens := jwtmw.NewService(cfg.JWT.Secret, cfg.JWT.TTL)
	authenticator := jwtmw.NewAuthenticator(tokens, userRepo, revocations)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, tokens, revocations, userOpts...)
	itemUC := itemusecase.NewItemUsecase(itemRepo)
	reviewUC := reviewusecase.NewReviewUsecase(reviewRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo)

	// Handler
	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(sqlDB),
		Users:    userhandler.NewUserHandler(userUC),
		Items:    itemhandler.NewItemHandler(itemUC),
		Reviews:  reviewhandler.NewReviewHandler(reviewUC),
		Comments: commenthandler.NewCommentHandler(commentUC),
	}

	opts := router.Options{Logger: logger, AllowedOrigins: cfg.CORS.AllowedOrigins}
	var limiter *ratelimiter.RateLimiter
	if cfg.RateLimit.AuthRequests > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthInterval)
		opts.AuthThrottle = limiter.Middleware()
	}

	return &App{
		Router:      router.NewRouter(handlers, jwtmw.AuthRequired(authenticator), opts),
		Revocations: revocations,
		Limiter:     limiter,
	}, nil
}
