package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/skillsync/internal/apiclient/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "login without password",
			args:        []string{"login", "--email", "ada@example.com"},
			errorString: `required flag(s) "password" not set`,
		},
		{
			name:        "login without email",
			args:        []string{"login", "--password", "secret"},
			errorString: `required flag(s) "email" not set`,
		},
		{
			name:        "profile without token",
			args:        []string{"profile"},
			errorString: `required flag(s) "token" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestLogin_PrintsToken(t *testing.T) {
	backend := apitest.NewBackend(t)

	out, err := execute(t, "login", "--email", "ada@example.com", "--password", "secret", "--api-url", backend.URL())
	require.NoError(t, err)

	assert.Contains(t, out, "[A] Ada Lovelace")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, apitest.Token, lines[len(lines)-1])
}

func TestLogin_BadCredentials(t *testing.T) {
	backend := apitest.NewBackend(t)

	_, err := execute(t, "login", "--email", "ada@example.com", "--password", "wrong", "--api-url", backend.URL())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestProfile_PrintsSections(t *testing.T) {
	backend := apitest.NewBackend(t)
	backend.SetData(map[string]any{
		"technicalSkills": []any{"Go", "SQL"},
		"timeframe":       "1-year",
	}, false)

	out, err := execute(t, "profile", "--token", apitest.Token, "--api-url", backend.URL())
	require.NoError(t, err)

	assert.Contains(t, out, "Go, SQL")
	assert.Contains(t, out, "Not set")
	assert.Contains(t, out, "Onboarding not completed yet.")
}

func TestProfile_RejectedToken(t *testing.T) {
	backend := apitest.NewBackend(t)

	_, err := execute(t, "profile", "--token", "stale", "--api-url", backend.URL())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load profile")
}

func TestRoute(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "signed out", args: []string{"route"}, want: "/auth/login"},
		{name: "onboarding pending", args: []string{"route", "--token", "opaque"}, want: "/onboarding"},
		{name: "onboarding complete", args: []string{"route", "--token", "opaque", "--complete"}, want: "/dashboard"},
		{name: "expired token", args: []string{"route", "--token", expired, "--complete"}, want: "/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Route:                "+tt.want)
		})
	}
}

func TestLoadConfig_FileUnderEnv(t *testing.T) {
	for _, key := range []string{"API_URL", "ONBOARDING_API_URL", "APP_ENV", "LOG_LEVEL", "API_TIMEOUT_SECONDS", "REDIS_ADDR", "REDIS_DB", "DRAFT_TTL_HOURS"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8081")

	path := filepath.Join(t.TempDir(), "skillsync.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 4000, "api_url": "https://file.example.com/api", "draft_ttl_hours": 2}`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "https://file.example.com/api", cfg.APIBase())
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
