package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.themealdb.com/api/json/v1/1", cfg.Catalog.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 1, cfg.Catalog.Retries)
	assert.Equal(t, 5, cfg.Catalog.Concurrency)
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, 10, cfg.Search.DisplayIngredients)
	assert.True(t, cfg.Search.Translate)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.local/api")
	t.Setenv("CATALOG_TIMEOUT", "5s")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEARCH_TRANSLATE", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://catalog.local/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.True(t, cfg.App.IsProduction())
	assert.False(t, cfg.Search.Translate)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 3001},
			Catalog:   CatalogConfig{BaseURL: "http://x", Timeout: time.Second, Concurrency: 2},
			Search:    SearchConfig{MaxResults: 20, DisplayIngredients: 10},
			Queue:     QueueConfig{Workers: 1, MaxSize: 1},
			RateLimit: RateLimitConfig{Enabled: true, Requests: 1, Window: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server port"},
		{name: "missing catalog url", mutate: func(c *Config) { c.Catalog.BaseURL = "" }, wantErr: "catalog base url"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Catalog.Concurrency = 0 }, wantErr: "concurrency"},
		{name: "negative retries", mutate: func(c *Config) { c.Catalog.Retries = -1 }, wantErr: "retries"},
		{name: "zero max results", mutate: func(c *Config) { c.Search.MaxResults = 0 }, wantErr: "max results"},
		{name: "zero workers", mutate: func(c *Config) { c.Queue.Workers = 0 }, wantErr: "workers"},
		{name: "rate limit without window", mutate: func(c *Config) { c.RateLimit.Window = 0 }, wantErr: "window"},
		{name: "rate limit disabled ignores window", mutate: func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.Window = 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := validateConfig(c)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
