package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 3s
database:
  host: db.internal
  user: prescriptions
  name: prescriptions
redis:
  url: redis://localhost:6379/0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "prescriptions.events", cfg.Redis.Channel)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
  user: prescriptions
  name: prescriptions
`)
	t.Setenv("PRESCRIPTIONS_DATABASE_HOST", "override.internal")
	t.Setenv("PRESCRIPTIONS_SERVER_PORT", "7070")
	t.Setenv("PRESCRIPTIONS_RATE_LIMIT_ENABLED", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigMemoryDriverNeedsNoDatabase(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: memory
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Database.Driver)
}

func TestLoadConfigValidation(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
log:
  level: verbose
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "config.database.host is required")
	assert.Contains(t, err.Error(), "config.log.level must be one of")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
