package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No config files exist in the test working directory, so only
	// defaults (and any APP_ env vars) apply.
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "murakams-home", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, DefaultGitHubPerPage, cfg.GitHub.PerPage)
	assert.False(t, cfg.GitHub.Enabled)
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, DefaultSMTPPort, cfg.SMTP.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_GITHUB_USERNAME", "leonardomurakami")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "leonardomurakami", cfg.GitHub.Username)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_UnknownProfileIsIgnored(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantMsg: "app.environment must be one of",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantMsg: "server.port is required",
		},
		{
			name:    "github enabled without username",
			mutate:  func(c *Config) { c.GitHub.Enabled = true },
			wantMsg: "github.username is required when",
		},
		{
			name: "smtp enabled without recipient",
			mutate: func(c *Config) {
				c.SMTP.Enabled = true
				c.SMTP.From = "noreply@example.com"
			},
			wantMsg: "smtp.contact_email is required when",
		},
		{
			name: "smtp enabled with malformed from address",
			mutate: func(c *Config) {
				c.SMTP.Enabled = true
				c.SMTP.From = "not-an-address"
				c.SMTP.ContactEmail = "me@example.com"
			},
			wantMsg: "smtp.from must be a valid email address",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *Config) { c.Cache.Backend = "memcached" },
			wantMsg: "cache.backend must be one of",
		},
		{
			name:    "redis backend without address",
			mutate:  func(c *Config) { c.Cache.Backend = "redis" },
			wantMsg: "cache.redis_addr is required when",
		},
		{
			name:    "retry attempts too high",
			mutate:  func(c *Config) { c.Client.Retry.MaxAttempts = 50 },
			wantMsg: "client.retry.max_attempts must be at most 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
