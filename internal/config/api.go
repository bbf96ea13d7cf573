package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Environment variable names for API configuration.
const (
	EnvAPIBaseURL = "BACKOFFICE_API_BASE_URL"
	EnvAPITimeout = "BACKOFFICE_API_TIMEOUT"
	EnvAPIToken   = "BACKOFFICE_API_TOKEN"
)

// APIConfig contains the backend connection settings. The auth token is
// environment-only so it never lands in a checked-in config file.
type APIConfig struct {
	// BaseURL is the API root. Default: "http://localhost:8000/api/v1"
	BaseURL string `toml:"base_url"`

	// Timeout is the transport default for every request. Default: "30s"
	Timeout string `toml:"timeout"`

	// Token is the bearer token read from BACKOFFICE_API_TOKEN.
	Token string `toml:"-"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// TimeoutDuration returns the parsed request timeout.
func (c *APIConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func (c *APIConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8000/api/v1"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAPITimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.Token = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
