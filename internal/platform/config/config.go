// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// EnvDevelopment is the default APP_ENV value.
	EnvDevelopment = "development"

	// devJWTSecret is only used when APP_ENV=development and JWT_SECRET is unset.
	devJWTSecret = "dev-only-insecure-secret"
)

// ErrMissingJWTSecret is returned outside development when JWT_SECRET is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set outside development")

// Config is the root configuration passed explicitly to every component that needs it.
type Config struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	HTTP  HTTPConfig  `envPrefix:"HTTP_"`
	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	JWT   JWTConfig   `envPrefix:"JWT_"`
	Log   LogConfig   `envPrefix:"LOG_"`
	CORS  CORSConfig  `envPrefix:"CORS_"`

	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DBConfig selects and configures the relational store.
// Driver is "postgres" or "sqlite". DSN, when set, overrides the individual fields.
type DBConfig struct {
	Driver     string `env:"DRIVER" envDefault:"sqlite"`
	DSN        string `env:"DSN"`
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"5432"`
	User       string `env:"USER"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME" envDefault:"reviews"`
	SSLMode    string `env:"SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./review.db"`
	// ConnectTimeout bounds the startup retry loop.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"60s"`
}

// RedisConfig configures the optional Redis connection. Redis is disabled when Host is empty.
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// CORSConfig lists allowed browser origins. An empty list disables the CORS middleware.
type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// RateLimitConfig throttles the credential endpoints per client IP.
// AuthRequests 0 disables throttling.
type RateLimitConfig struct {
	AuthRequests int           `env:"AUTH_REQUESTS" envDefault:"20"`
	AuthInterval time.Duration `env:"AUTH_INTERVAL" envDefault:"1m"`
}

// IsDevelopment reports whether the process runs with APP_ENV=development.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads an optional .env file and then parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse(nil)
}

// Parse builds a Config from environ. A nil map reads the process environment,
// which lets tests construct isolated configurations.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return ErrMissingJWTSecret
		}
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
		c.JWT.Secret = devJWTSecret
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	if c.RateLimit.AuthRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_AUTH_REQUESTS must not be negative, got %d", c.RateLimit.AuthRequests)
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	return nil
}
