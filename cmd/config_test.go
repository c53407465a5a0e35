package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_NAME", "CORS_ALLOW_ORIGINS", "LOG_LEVEL", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		HTTPPort:         "8000",
		DatabaseName:     "logiflow",
		CORSAllowOrigins: []string{"*"},
		LogLevel:         "info",
	}, cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "7000")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORT=1234\nDATABASE_NAME=freight\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DATABASE_NAME") })

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "freight", cfg.DatabaseName)
}

func TestConfig_SlogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for raw, want := range testCases {
		assert.Equal(t, want, Config{LogLevel: raw}.SlogLevel(), raw)
	}
}
