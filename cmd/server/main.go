package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"review_backend/internal/app/di"
	"review_backend/internal/platform/config"
	"review_backend/internal/platform/db"
	platformhttp "review_backend/internal/platform/http"
	"review_backend/internal/platform/logger"
	infraredis "review_backend/internal/platform/redis"
	"review_backend/internal/platform/revocation"
)

// janitorInterval は期限切れデータを掃除する間隔です。
const janitorInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, os.Stdout)
	slog.SetDefault(log)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Storing revoked tokens in the database.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	app, err := di.NewApp(cfg, gdb, rdb, log)
	if err != nil {
		slog.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	go runJanitor(ctx, app)

	srv := platformhttp.NewServer(cfg.HTTP, app.Router)
	if err := platformhttp.Run(ctx, cfg.HTTP, srv); err != nil {
		slog.Error("http server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("bye")
}

// runJanitor はレートリミッタの古いウィンドウとDB上の失効済みトークンを定期的に削除します。
// Redis のキーは TTL で消えるため対象外です。
func runJanitor(ctx context.Context, app *di.App) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if app.Limiter != nil {
			if n := app.Limiter.Sweep(); n > 0 {
				slog.Debug("rate limiter swept", "removed", n)
			}
		}
		if store, ok := app.Revocations.(*revocation.RevocationGorm); ok {
			n, err := store.DeleteExpired(ctx)
			if err != nil {
				slog.Warn("failed to delete expired revocations", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired revocations deleted", "removed", n)
			}
		}
	}
}
