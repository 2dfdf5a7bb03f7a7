// Package config manages ytkit configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	ythttp "ytkit/http"
	"ytkit/innertube"
	"ytkit/internal/retry"
)

// Config holds the settings of a ytkit client.
type Config struct {
	// Language is the interface language tag (default: "en").
	Language string `json:"language"`
	// Region is the content region (default: "US").
	Region string `json:"region"`

	// ClientName and ClientVersion identify the web client to the API
	ClientName    string `json:"client_name"`
	ClientVersion string `json:"client_version"`
	UserAgent     string `json:"user_agent"`

	// Timeout bounds a single HTTP request
	Timeout time.Duration `json:"timeout"`
	// RequestsPerSecond is the per-host rate limit (0 = unlimited)
	RequestsPerSecond float64 `json:"requests_per_second"`

	MaxRetries        int           `json:"max_retries"`
	InitialBackoff    time.Duration `json:"initial_backoff"`
	MaxBackoff        time.Duration `json:"max_backoff"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`

	// ScriptTimeout bounds a single descrambler call
	ScriptTimeout time.Duration `json:"script_timeout"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	httpDefaults := ythttp.DefaultConfig()
	retryDefaults := retry.DefaultConfig()
	return &Config{
		Language:          "en",
		Region:            "US",
		ClientName:        innertube.DefaultClientName,
		ClientVersion:     innertube.DefaultClientVersion,
		UserAgent:         httpDefaults.UserAgent,
		Timeout:           httpDefaults.Timeout,
		RequestsPerSecond: httpDefaults.RateLimiter.RPS,
		MaxRetries:        retryDefaults.MaxRetries,
		InitialBackoff:    retryDefaults.InitialBackoff,
		MaxBackoff:        retryDefaults.MaxBackoff,
		BackoffMultiplier: retryDefaults.Multiplier,
		ScriptTimeout:     2 * time.Second,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(filePaths()); err != nil {
		// Config file is optional
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func filePaths() []string {
	paths := []string{"ytkit.json"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ytkit", "ytkit.json"))
	}
	return paths
}

// loadFromFile loads the first config file found in paths.
func (c *Config) loadFromFile(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}
	return os.ErrNotExist
}

// loadFromEnv overrides config with YTKIT_* environment variables. A set
// but malformed value is an error.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("YTKIT_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("YTKIT_REGION"); v != "" {
		c.Region = v
	}
	if v := os.Getenv("YTKIT_CLIENT_VERSION"); v != "" {
		c.ClientVersion = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"YTKIT_TIMEOUT", &c.Timeout},
		{"YTKIT_INITIAL_BACKOFF", &c.InitialBackoff},
		{"YTKIT_MAX_BACKOFF", &c.MaxBackoff},
		{"YTKIT_SCRIPT_TIMEOUT", &c.ScriptTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("YTKIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("YTKIT_RPS: %w", err)
		}
		c.RequestsPerSecond = f
	}
	if v := os.Getenv("YTKIT_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("YTKIT_MAX_RETRIES: %w", err)
		}
		c.MaxRetries = n
	}
	return nil
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language must be set")
	}
	if c.ClientName == "" || c.ClientVersion == "" {
		return fmt.Errorf("client_name and client_version must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.MaxBackoff <= 0 {
		return fmt.Errorf("max_backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be > 1")
	}
	if c.ScriptTimeout <= 0 {
		return fmt.Errorf("script_timeout must be positive")
	}
	return nil
}

// Retry returns the retry policy of the transport.
func (c *Config) Retry() retry.Config {
	r := retry.DefaultConfig()
	r.MaxRetries = c.MaxRetries
	r.InitialBackoff = c.InitialBackoff
	r.MaxBackoff = c.MaxBackoff
	r.Multiplier = c.BackoffMultiplier
	return r
}

// HTTP returns the transport configuration.
func (c *Config) HTTP() *ythttp.Config {
	h := ythttp.DefaultConfig()
	h.Timeout = c.Timeout
	h.Retry = c.Retry()
	if c.UserAgent != "" {
		h.UserAgent = c.UserAgent
	}
	h.RateLimiter.RPS = c.RequestsPerSecond
	return h
}

// Locale returns the request locale.
func (c *Config) Locale() innertube.Locale {
	return innertube.Locale{Language: c.Language, Region: c.Region}
}
