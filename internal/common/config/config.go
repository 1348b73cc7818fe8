package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port int `env:"PORT" envDefault:"5000"`

		// Allowed frontend origins, comma separated.
		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3001,http://127.0.0.1:5500"`
	}

	Mongo struct {
		URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
		Database string `env:"MONGO_DATABASE" envDefault:"onboarding"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		// Read-through user cache; the store stays authoritative either way.
		CacheEnabled bool          `env:"REDIS_CACHE_ENABLED" envDefault:"false"`
		CacheTTL     time.Duration `env:"USER_CACHE_TTL" envDefault:"30s"`
	}

	SMTP struct {
		Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		User     string `env:"EMAIL_USER"`
		Password string `env:"EMAIL_PASS"`
		FromName string `env:"EMAIL_FROM_NAME" envDefault:"Onboarding"`

		// Skips real SMTP delivery; OTP codes are only logged. Local dev only.
		Disabled bool `env:"SMTP_DISABLED" envDefault:"false"`
	}

	Razorpay struct {
		KeyID     string `env:"RZP_KEY_ID"`
		KeySecret string `env:"RZP_KEY_SECRET"`
	}
}

// Load reads .env (if present) and parses the environment into Config.
func Load() (*Config, error) {
	// Missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load that panics on failure. For use in main only.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
