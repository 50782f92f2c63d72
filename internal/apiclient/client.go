// Package apiclient is the thin JSON client for the SkillSync REST backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
)

// DefaultTimeout is the default backend request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:4000/api"

// DefaultErrorMessage is the error text when a failed response carries no message.
const DefaultErrorMessage = "Request failed"

// Options configures a Client.
type Options struct {
	BaseURL       string // Base for /auth endpoints
	OnboardingURL string // Base for /onboarding and /auth/me; defaults to BaseURL
	Timeout       time.Duration
	HTTPClient    *http.Client
	Logger        *zap.Logger
}

// Client calls the backend on behalf of one browser session. The zero token
// sends no Authorization header.
type Client struct {
	baseURL       string
	onboardingURL string
	httpClient    *http.Client
	token         string
	logger        *zap.Logger
}

// New creates a Client from opts.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	onboarding := strings.TrimRight(opts.OnboardingURL, "/")
	if onboarding == "" {
		onboarding = base
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:       base,
		onboardingURL: onboarding,
		httpClient:    httpClient,
		logger:        logger,
	}
}

// WithToken returns a copy of c that authenticates with the bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Token returns the bearer token, or "".
func (c *Client) Token() string {
	return c.token
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (*types.UserResponse, error) {
	var out types.UserResponse
	if err := c.do(ctx, http.MethodGet, c.onboardingURL, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount calls PUT /auth/account.
func (c *Client) UpdateAccount(ctx context.Context, update types.AccountUpdate) (*types.UserResponse, error) {
	var out types.UserResponse
	if err := c.do(ctx, http.MethodPut, c.baseURL, "/auth/account", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchProfile calls GET /onboarding.
func (c *Client) FetchProfile(ctx context.Context) (*types.ProfileResponse, error) {
	var out types.ProfileResponse
	if err := c.do(ctx, http.MethodGet, c.onboardingURL, "/onboarding", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveOnboarding calls POST /onboarding with the full data object, which
// overwrites the stored profile. The body is checked against the profile data
// schema first and is not sent when it fails.
func (c *Client) SaveOnboarding(ctx context.Context, data any) (*types.MessageResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode onboarding data: %w", err)
	}
	if err := schemas.ValidateProfileData(body); err != nil {
		return nil, fmt.Errorf("onboarding data rejected: %w", err)
	}

	var out types.MessageResponse
	if err := c.do(ctx, http.MethodPost, c.onboardingURL, "/onboarding", json.RawMessage(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, base, path string, in, out any) error {
	start := time.Now()

	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return &Error{Method: method, Path: path, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &Error{Method: method, Path: path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Cause: err}
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	var body any
	isJSON := isJSONContent(resp.Header.Get("Content-Type"))
	if isJSON && len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			isJSON = false
			body = nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: messageOf(body),
			Details: body,
		}
	}

	if out == nil || !isJSON || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func isJSONContent(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func messageOf(body any) string {
	if m, ok := body.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return DefaultErrorMessage
}

// IsStatus reports whether err is a backend Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
