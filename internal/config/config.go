// Package config loads application configuration from environment
// variables. A .env file is honored when present so local development
// matches production wiring.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Bearer token signing
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"72h"`

	// Comma-separated list of additional allowed CORS origins
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:""`
}

// CORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) CORSAllowedOrigins() []string {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
