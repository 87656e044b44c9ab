package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/composite-nowcast/internal/nowcast/sources"
)

var validate = validator.New()

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// HTTPTimeout bounds each outbound page request.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// FetchTimeout bounds one whole fetch cycle (both sources).
	FetchTimeout time.Duration `validate:"gtefield=HTTPTimeout"`

	LogLevel  string `validate:"oneof=debug info warn warning error"`
	UserAgent string `validate:"required"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.UserAgent = getenvDefault("USER_AGENT", sources.DefaultUserAgent)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	fetchTimeout, err := time.ParseDuration(getenvDefault("FETCH_TIMEOUT", "45s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	cfg.FetchTimeout = fetchTimeout

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
