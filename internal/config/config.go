// Package config loads settings for the vtm command from the environment.
// Command-line flags override these values.
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Store backends
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds the environment-driven settings
type Config struct {
	Store            string        `env:"VTM_STORE"              envDefault:"file"`
	RedisAddr        string        `env:"VTM_REDIS_ADDR"         envDefault:"localhost:6379"`
	RedisDialTimeout time.Duration `env:"VTM_REDIS_DIAL_TIMEOUT" envDefault:"2s"`
	LogLevel         string        `env:"VTM_LOG_LEVEL"          envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotenv reads KEY=value pairs from path into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load "+path).
			WithMeta("path", path)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Validate checks the store backend and log level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Store {
	case StoreFile:
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	default:
		vb.InvalidField("store", "must be file or redis")
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("log_level", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps debug, info, warn and error onto slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
