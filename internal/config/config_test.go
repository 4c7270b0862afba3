package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("CHECKOUT_TAX_RATE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, 0.08, cfg.Checkout.TaxRate)
	assert.Equal(t, 2*time.Second, cfg.Checkout.ProcessingDelay)
	assert.False(t, cfg.Newsletter.DispatchEnabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_KEY_PREFIX", "shop:")
	t.Setenv("CHECKOUT_TAX_RATE", "0.2")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "150ms")
	t.Setenv("NEWSLETTER_DISPATCH_ENABLED", "true")
	t.Setenv("NEWSLETTER_DISPATCH_INTERVAL", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, "shop:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 0.2, cfg.Checkout.TaxRate)
	assert.Equal(t, 150*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.True(t, cfg.Newsletter.DispatchEnabled)
	assert.Equal(t, 5*time.Second, cfg.Newsletter.DispatchInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: "8080"},
			Storage:    StorageConfig{Backend: StorageMemory},
			Checkout:   CheckoutConfig{TaxRate: 0.08},
			Newsletter: NewsletterConfig{DispatchInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "s3" }, wantErr: "unsupported STORAGE_BACKEND"},
		{name: "file backend without dir", mutate: func(c *Config) { c.Storage.Backend = StorageFile }, wantErr: "STORAGE_FILE_DIR"},
		{name: "postgres without host", mutate: func(c *Config) { c.Storage.Backend = StoragePostgres }, wantErr: "DB_HOST"},
		{name: "tax rate above one", mutate: func(c *Config) { c.Checkout.TaxRate = 1.5 }, wantErr: "CHECKOUT_TAX_RATE"},
		{name: "dispatch without interval", mutate: func(c *Config) {
			c.Newsletter.DispatchEnabled = true
			c.Newsletter.DispatchInterval = 0
		}, wantErr: "NEWSLETTER_DISPATCH_INTERVAL"},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
