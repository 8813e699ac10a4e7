package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	JWTSecret   string `env:"JWT_SECRET,   required"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	CORSOrigins string `env:"CORS_ORIGINS, default=*"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL,       required"`
	MaxConns int    `env:"DATABASE_MAX_CONNS, default=5"`
}

// Load reads configuration from environment variables using go-envconfig.
// JWT_SECRET and DATABASE_URL are required; a missing value is a fatal
// startup error, never a recoverable one.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
