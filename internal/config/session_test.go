package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-session-signing-32b"

func TestNewSessionConfig_DefaultValues(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SESSION_MAX_AGE_DAYS", "")
	t.Setenv("SESSION_SECURE", "")

	cfg, err := NewSessionConfig()
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Secret)
	assert.Equal(t, 30, cfg.MaxAgeDays, "should use default max age of 30 days")
	assert.False(t, cfg.Secure)
	assert.Equal(t, 30*24*60*60, cfg.MaxAgeSeconds())
}

func TestNewSessionConfig_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	cfg, err := NewSessionConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
}

func TestNewSessionConfig_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("x", 10))

	_, err := NewSessionConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")
}

func TestNewSessionConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		maxAge  string
		secure  string
		wantErr string
	}{
		{name: "non-numeric max age", maxAge: "abc", wantErr: "invalid SESSION_MAX_AGE_DAYS"},
		{name: "zero max age", maxAge: "0", wantErr: "at least 1 day"},
		{name: "bad bool", maxAge: "1", secure: "maybe", wantErr: "invalid SESSION_SECURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", testSecret)
			t.Setenv("SESSION_MAX_AGE_DAYS", tt.maxAge)
			t.Setenv("SESSION_SECURE", tt.secure)

			_, err := NewSessionConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
