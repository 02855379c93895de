package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "agenthub-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "agenthub.db", cfg.Database.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NotZero(t, cfg.HTTP.ReadTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGENTHUB_DATABASE_DRIVER", "postgres")
	t.Setenv("AGENTHUB_DATABASE_PASSWORD", "hunter2")
	t.Setenv("AGENTHUB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("AGENTHUB_DATABASE_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("AGENTHUB_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "agenthub",
		Password: "hunter2",
		DBName:   "agenthub",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=agenthub password=hunter2 dbname=agenthub sslmode=require",
		cfg.DSN(),
	)
}
