package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[venue_service]
url = "http://venues:8080"

[cache]
backend = "redis"

[redis]
addr = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://venues:8080", cfg.VenueService.URL)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 7, cfg.Booking.DateOptionsDays)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "10s", cfg.SubmitTimeout().String())
}

func TestLoad_EnvOverridesPath(t *testing.T) {
	path := writeConfig(t, `
[venue_service]
url = "http://from-env"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.VenueService.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "нет url бэкенда", modify: func(c *Config) { c.VenueService.URL = "" }},
		{name: "неизвестный кеш", modify: func(c *Config) { c.Cache.Backend = "memcached" }},
		{name: "битый часовой пояс", modify: func(c *Config) { c.VenueService.DefaultTimezone = "Mars/Olympus" }},
		{name: "нулевой таймаут отправки", modify: func(c *Config) { c.Booking.SubmitTimeout = 0 }},
		{name: "база без хоста", modify: func(c *Config) { c.Database.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.VenueService.URL = "http://venues"
			require.NoError(t, cfg.Validate())

			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
