package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort         string   `env:"PORT"                        envDefault:"8000"`
	DatabaseURL      string   `env:"DATABASE_URL"`
	DatabaseName     string   `env:"DATABASE_NAME"               envDefault:"logiflow"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS"          envDefault:"*"        envSeparator:","`
	LogLevel         string   `env:"LOG_LEVEL"                   envDefault:"info"`
	OTLPEndpoint     string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadConfig loads the given .env files, when they exist, and parses the environment.
// Variables already set in the environment win over .env values.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	origins := make([]string, 0, len(cfg.CORSAllowOrigins))
	for _, origin := range cfg.CORSAllowOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.CORSAllowOrigins = origins

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
