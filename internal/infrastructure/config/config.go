package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingDSN aborts startup when the database connection string is absent.
var ErrMissingDSN = errors.New("config: DB_DSN is required")

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AllowedOrigins is the browser CORS allow-list.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	// DSN is the MySQL connection string. The process refuses to start
	// without it.
	DSN string `env:"DB_DSN"`
}

type RedisConfig struct {
	// Addr is optional; when empty the read-through cache is disabled.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// fails fast on a missing connection string.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Database.DSN == "" {
		return nil, ErrMissingDSN
	}
	return &cfg, nil
}
