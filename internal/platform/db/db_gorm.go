// Package db opens the relational store and owns its schema.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"review_backend/internal/platform/config"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// retryInterval is the pause between connection attempts at startup.
var retryInterval = 3 * time.Second

// BuildPostgresDSN builds a keyword/value DSN unless cfg.DSN is set.
func BuildPostgresDSN(cfg config.DBConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// BuildSQLiteDSN returns the SQLite path with foreign key enforcement enabled,
// which the cascade deletes rely on.
func BuildSQLiteDSN(cfg config.DBConfig) string {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = cfg.SQLitePath
	}
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(BuildPostgresDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(BuildSQLiteDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// GormConfig is shared by the server and tests. TranslateError lets
// adapters detect unique violations as gorm.ErrDuplicatedKey on every driver.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// Open connects to the store, retrying until cfg.ConnectTimeout elapses.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(cfg.ConnectTimeout)
	for {
		db, err := gorm.Open(dialector, GormConfig())
		if err == nil {
			slog.Info("database connection successful", "driver", cfg.Driver)
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
		}
		slog.Warn("database connect failed, retrying", "driver", cfg.Driver, "error", err)
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates every table, foreign key and index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	// sqlite errors that escaped translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
