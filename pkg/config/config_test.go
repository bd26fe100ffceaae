package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, 5, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "10")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	assert.Equal(t, 10, cfg.ShutdownTimeout)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.ShutdownTimeout)
}
