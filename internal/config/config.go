package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// ConnectionTimeout is the window after the last observed device request
	// during which the device still counts as connected.
	ConnectionTimeout time.Duration `env:"CONNECTION_TIMEOUT" default:"60s"`

	// DeviceUserAgentMarker and DeviceQueryFlag identify device-originated
	// requests. Self-identification only, not authentication.
	DeviceUserAgentMarker string `env:"DEVICE_UA_MARKER" default:"ESP8266"`
	DeviceQueryFlag       string `env:"DEVICE_QUERY_FLAG" default:"esp8266"`

	DefaultMessage string `env:"DEFAULT_MESSAGE" default:"Hello World"`
	StaticDir      string `env:"STATIC_DIR" default:"web/public"`

	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" default:"20"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" default:"40"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ConnectionTimeout <= 0 {
		return fmt.Errorf("CONNECTION_TIMEOUT must be positive, got %s", cfg.ConnectionTimeout)
	}
	if cfg.DeviceUserAgentMarker == "" {
		return fmt.Errorf("DEVICE_UA_MARKER must not be empty")
	}
	if cfg.RateLimitPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %v", cfg.RateLimitPerSecond)
	}
	if cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", cfg.RateLimitBurst)
	}
	return nil
}
