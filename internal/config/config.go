package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENV" envDefault:"development"` // production, development, etc.
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"./database.db"` // sqlite file, created if missing
	PostgresURI    string `env:"POSTGRES_URI"`
	RedisURI       string `env:"REDIS_URI"` // optional; enables the shared rate limiter

	StaticDir         string   `env:"STATIC_DIR" envDefault:"../frontend"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustProxyHeaders bool     `env:"TRUST_PROXY_HEADERS" envDefault:"false"` // honour X-Forwarded-For for client IPs

	RateLimitEnabled       bool          `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS           float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst         int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RateLimitWindow        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"2m"`
	RateLimitMaxRequests   int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"600"`
	RateLimitBlockDuration time.Duration `env:"RATE_LIMIT_BLOCK_DURATION" envDefault:"10m"`
}

// Load reads the configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	cfg.AllowedOrigins = parseOrigins(cfg.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that would make startup fail later in a less obvious place.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			return fmt.Errorf("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.PostgresURI) == "" {
			return fmt.Errorf("POSTGRES_URI is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
		}
		if c.RedisURI != "" && (c.RateLimitWindow <= 0 || c.RateLimitMaxRequests <= 0) {
			return fmt.Errorf("RATE_LIMIT_WINDOW and RATE_LIMIT_MAX_REQUESTS must be positive")
		}
	}
	return nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

// AllowsAnyOrigin reports whether CORS is left fully open.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func parseOrigins(in []string) []string {
	var out []string
	for _, part := range in {
		part = strings.TrimSpace(part)
		if part != "" && !containsOrigin(out, part) {
			out = append(out, part)
		}
	}
	return out
}

func containsOrigin(list []string, o string) bool {
	o = strings.TrimSpace(strings.ToLower(o))
	for _, v := range list {
		if strings.TrimSpace(strings.ToLower(v)) == o {
			return true
		}
	}
	return false
}
