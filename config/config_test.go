package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://rblc.rw, https://admin.rblc.rw ,")

	cfg := LoadConfig()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, []string{"https://rblc.rw", "https://admin.rblc.rw"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_InvalidRedisDBFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestDatabaseConfig_URL(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.URL())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid local config", func(t *testing.T) {
		cfg := &Config{Env: "local", DB: DatabaseConfig{Host: "h", DBName: "n"}}
		require.NoError(t, cfg.Validate())
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		cfg := &Config{Env: "prod", DB: DatabaseConfig{Host: "h", DBName: "n"}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("reports every missing value", func(t *testing.T) {
		cfg := &Config{Env: "production"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}
