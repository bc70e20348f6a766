package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; GO_ENV=production skips .env loading.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_DSN",
		"AUTO_MIGRATE", "SWAGGER_ENABLED", "DB_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "production")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, defaultDBUrl, cfg.DBUrl)
	assert.Equal(t, defaultSQLiteDSN, cfg.SQLiteDSN)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.SwaggerEnabled)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_DSN", ":memory:")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("SWAGGER_ENABLED", "true")
	t.Setenv("DB_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://devevents.io/ ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, ":memory:", cfg.SQLiteDSN)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, 250*time.Millisecond, cfg.DBTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://devevents.io/"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "STORAGE_DRIVER", "mysql"},
		{"bad bool", "AUTO_MIGRATE", "maybe"},
		{"bad duration", "DB_TIMEOUT", "soon"},
		{"non-positive duration", "DB_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, true, "")
		logger.Info("hello", "k", "v")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "v", rec["k"])
	})

	t.Run("development writes text and honours level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, false, "warn")
		logger.Info("dropped")
		logger.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.True(t, strings.Contains(out, "msg=kept"))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
