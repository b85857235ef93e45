package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turi333-pixel/Gigstar/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()

	assert.Equal(t, ":8080", c.Listen)
	assert.Equal(t, "ticketmaster", c.Provider)
	assert.Equal(t, "https://app.ticketmaster.com/discovery/v2", c.Ticketmaster.BaseURL)
	assert.Equal(t, "https://www.skiddle.com/api/v1", c.Skiddle.BaseURL)
	assert.Equal(t, 10*time.Second, c.Ticketmaster.Timeout)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
provider: skiddle
skiddle:
  api_key: file-key
postgres_url: postgres://localhost/gigstar
`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Listen)
	assert.Equal(t, "skiddle", c.Provider)
	assert.Equal(t, "file-key", c.Skiddle.APIKey)
	assert.Equal(t, "postgres://localhost/gigstar", c.PostgresURL)
	// Untouched fields keep their defaults.
	assert.Equal(t, "https://www.skiddle.com/api/v1", c.Skiddle.BaseURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`provider: skiddle`), 0o600))

	t.Setenv("EVENT_PROVIDER", "ticketmaster")
	t.Setenv("TICKETMASTER_API_KEY", "env-key")
	t.Setenv("REDIS_ADDR", "redis:6379")

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ticketmaster", c.Provider)
	assert.Equal(t, "env-key", c.Ticketmaster.APIKey)
	assert.Equal(t, "redis:6379", c.RedisAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
