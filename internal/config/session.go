package config

import (
	"fmt"
	"os"
	"strconv"
)

// minSessionSecretLen is the shortest accepted cookie signing key.
const minSessionSecretLen = 32

// SessionConfig holds configuration for the browser session cookie.
type SessionConfig struct {
	Secret     string
	MaxAgeDays int
	Secure     bool
}

// NewSessionConfig creates a session configuration from environment variables.
// It reads SESSION_SECRET (required), SESSION_MAX_AGE_DAYS (default: 30) and
// SESSION_SECURE (default: false).
func NewSessionConfig() (*SessionConfig, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	maxAgeStr := os.Getenv("SESSION_MAX_AGE_DAYS")
	if maxAgeStr == "" {
		maxAgeStr = "30" // default
	}
	maxAge, err := strconv.Atoi(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE_DAYS: %v", err)
	}

	secure := false
	if raw := os.Getenv("SESSION_SECURE"); raw != "" {
		secure, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_SECURE: %v", err)
		}
	}

	config := &SessionConfig{
		Secret:     secret,
		MaxAgeDays: maxAge,
		Secure:     secure,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *SessionConfig) normalize() error {
	if len(c.Secret) < minSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes, got: %d", minSessionSecretLen, len(c.Secret))
	}
	if c.MaxAgeDays < 1 {
		return fmt.Errorf("SESSION_MAX_AGE_DAYS must be at least 1 day, got: %d", c.MaxAgeDays)
	}
	return nil
}

// MaxAgeSeconds returns the cookie lifetime in seconds.
func (c *SessionConfig) MaxAgeSeconds() int {
	return c.MaxAgeDays * 24 * 60 * 60
}
