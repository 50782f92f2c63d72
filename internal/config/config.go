// Package config provides configuration loading and validation for the SkillSync front-end.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIBaseURL is used when API_URL is not set.
const DefaultAPIBaseURL = "http://localhost:4000/api"

// Config represents the front-end configuration. Values come from the environment
// (see FromEnv) and may be overlaid by a JSON file (see LoadConfig).
type Config struct {
	Port             int    `json:"port,omitempty"`               // Port the web front-end listens on
	APIBaseURL       string `json:"api_url,omitempty"`            // Base URL of the REST backend
	OnboardingAPIURL string `json:"onboarding_api_url,omitempty"` // Optional separate base for /onboarding and /auth/me
	Env              string `json:"env,omitempty"`                // "production" or "development"
	LogLevel         string `json:"log_level,omitempty"`          // zap level name

	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"` // Timeout for backend calls

	// Draft store. Empty RedisAddr keeps drafts in memory.
	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`
	DraftTTLHours int    `json:"draft_ttl_hours,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:                  3000,
		APIBaseURL:            DefaultAPIBaseURL,
		Env:                   "development",
		LogLevel:              "info",
		RequestTimeoutSeconds: 30,
		DraftTTLHours:         24,
	}
}

// FromEnv reads the configuration from environment variables, falling back to
// DefaultConfig for anything unset.
func FromEnv() (*Config, error) {
	return FromEnvWithDefaults(DefaultConfig())
}

// FromEnvWithDefaults is FromEnv with caller-supplied defaults, typically a
// config file already merged with DefaultConfig.
func FromEnvWithDefaults(defaults Config) (*Config, error) {
	cfg := Config{
		APIBaseURL:       os.Getenv("API_URL"),
		OnboardingAPIURL: os.Getenv("ONBOARDING_API_URL"),
		Env:              os.Getenv("APP_ENV"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &cfg.Port},
		{"API_TIMEOUT_SECONDS", &cfg.RequestTimeoutSeconds},
		{"REDIS_DB", &cfg.RedisDB},
		{"DRAFT_TTL_HOURS", &cfg.DraftTTLHours},
	}
	for _, i := range ints {
		raw := os.Getenv(i.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", i.key, err)
		}
		*i.dst = v
	}

	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'request_timeout_seconds' must be non-negative")
	}
	if c.DraftTTLHours < 0 {
		return fmt.Errorf("config error: 'draft_ttl_hours' must be non-negative")
	}
	if c.APIBaseURL != "" && !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("config error: 'api_url' must be an http(s) URL: %s", c.APIBaseURL)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.OnboardingAPIURL == "" {
		result.OnboardingAPIURL = defaults.OnboardingAPIURL
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisPassword == "" {
		result.RedisPassword = defaults.RedisPassword
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RequestTimeoutSeconds == 0 {
		result.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
	if result.RedisDB == 0 {
		result.RedisDB = defaults.RedisDB
	}
	if result.DraftTTLHours == 0 {
		result.DraftTTLHours = defaults.DraftTTLHours
	}

	return result
}

// APIBase returns the backend base URL without a trailing slash.
func (c *Config) APIBase() string {
	return strings.TrimRight(c.APIBaseURL, "/")
}

// OnboardingBase returns the base URL for profile endpoints, which defaults to APIBase.
func (c *Config) OnboardingBase() string {
	if c.OnboardingAPIURL == "" {
		return c.APIBase()
	}
	return strings.TrimRight(c.OnboardingAPIURL, "/")
}

// RequestTimeout returns the backend call timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DraftTTL returns how long an untouched wizard or editor draft is kept.
func (c *Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLHours) * time.Hour
}

// IsProduction reports whether the front-end runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
