package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	itemadapters "review_backend/internal/feature/items/adapters"
	itemusecase "review_backend/internal/feature/items/usecase"
	"review_backend/internal/platform/config"
	"review_backend/internal/platform/db"
	"review_backend/internal/platform/logger"
)

func strPtr(s string) *string { return &s }

// sampleItems は初期投入するアイテムです。同名のアイテムが既にあればスキップされます。
var sampleItems = []itemusecase.CreateInput{
	{Name: "The Pragmatic Programmer", Description: strPtr("From journeyman to master."), Category: strPtr("books")},
	{Name: "The Go Programming Language", Description: strPtr("Donovan and Kernighan."), Category: strPtr("books")},
	{Name: "Mechanical Keyboard", Description: strPtr("Tenkeyless, brown switches."), Category: strPtr("electronics")},
	{Name: "Noise Cancelling Headphones", Description: strPtr("Over-ear, 30h battery."), Category: strPtr("electronics")},
	{Name: "Pour-over Coffee Set", Description: strPtr("Dripper, filters and kettle."), Category: strPtr("kitchen")},
	{Name: "Cast Iron Skillet", Category: strPtr("kitchen")},
	{Name: "Trail Running Shoes", Category: strPtr("outdoors")},
	{Name: "Ultralight Tent", Description: strPtr("Two person, three season."), Category: strPtr("outdoors")},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(cfg.Log, os.Stdout))

	gdb, err := db.Open(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	uc := itemusecase.NewItemUsecase(itemadapters.NewItemRepository(gdb))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := uc.Seed(ctx, sampleItems)
	if err != nil {
		slog.Error("seed failed", "error", err, "inserted", n)
		os.Exit(1)
	}
	slog.Info("seed ok", "inserted", n, "total", len(sampleItems))
}
