package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "US", cfg.Region)
	assert.Equal(t, 2*time.Second, cfg.ScriptTimeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ytkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language":"de","region":"DE","max_retries":7}`), 0o600))

	cfg := DefaultConfig()
	require.NoError(t, cfg.loadFromFile([]string{filepath.Join(dir, "missing.json"), path}))
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "DE", cfg.Region)
	assert.Equal(t, 7, cfg.MaxRetries)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultConfig().Timeout, cfg.Timeout)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	err := cfg.loadFromFile([]string{filepath.Join(dir, "none.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	err = cfg.loadFromFile([]string{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("YTKIT_LANGUAGE", "ja")
	t.Setenv("YTKIT_REGION", "JP")
	t.Setenv("YTKIT_CLIENT_VERSION", "2.20250101.00.00")
	t.Setenv("YTKIT_TIMEOUT", "10s")
	t.Setenv("YTKIT_RPS", "1.5")
	t.Setenv("YTKIT_MAX_RETRIES", "2")
	t.Setenv("YTKIT_INITIAL_BACKOFF", "250ms")
	t.Setenv("YTKIT_MAX_BACKOFF", "4s")
	t.Setenv("YTKIT_SCRIPT_TIMEOUT", "500ms")

	cfg := DefaultConfig()
	require.NoError(t, cfg.loadFromEnv())
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, "JP", cfg.Region)
	assert.Equal(t, "2.20250101.00.00", cfg.ClientVersion)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 1.5, cfg.RequestsPerSecond)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialBackoff)
	assert.Equal(t, 4*time.Second, cfg.MaxBackoff)
	assert.Equal(t, 500*time.Millisecond, cfg.ScriptTimeout)
}

func TestLoadFromEnvRejectsMalformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"YTKIT_TIMEOUT", "soon"},
		{"YTKIT_RPS", "fast"},
		{"YTKIT_MAX_RETRIES", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := DefaultConfig().loadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty language", func(c *Config) { c.Language = "" }},
		{"empty client version", func(c *Config) { c.ClientVersion = "" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative rps", func(c *Config) { c.RequestsPerSecond = -1 }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
		{"zero initial backoff", func(c *Config) { c.InitialBackoff = 0 }},
		{"max below initial", func(c *Config) { c.MaxBackoff = c.InitialBackoff / 2 }},
		{"multiplier of one", func(c *Config) { c.BackoffMultiplier = 1 }},
		{"zero script timeout", func(c *Config) { c.ScriptTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDerivedConfigs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 1
	cfg.InitialBackoff = time.Second
	cfg.MaxBackoff = 3 * time.Second
	cfg.BackoffMultiplier = 3
	cfg.RequestsPerSecond = 0.5
	cfg.Timeout = 9 * time.Second
	cfg.UserAgent = "ytkit-test"

	r := cfg.Retry()
	assert.Equal(t, 1, r.MaxRetries)
	assert.Equal(t, time.Second, r.InitialBackoff)
	assert.Equal(t, 3*time.Second, r.MaxBackoff)
	assert.Equal(t, 3.0, r.Multiplier)

	h := cfg.HTTP()
	assert.Equal(t, 9*time.Second, h.Timeout)
	assert.Equal(t, "ytkit-test", h.UserAgent)
	assert.Equal(t, 0.5, h.RateLimiter.RPS)
	assert.Equal(t, r, h.Retry)

	loc := cfg.Locale()
	assert.Equal(t, "en", loc.Language)
	assert.Equal(t, "US", loc.Region)
}
