package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/skillsync/internal/apiclient/apitest"
	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) (*Client, *apitest.Backend) {
	t.Helper()
	backend := apitest.NewBackend(t)
	return New(Options{BaseURL: backend.URL() + "/"}), backend
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultBaseURL, c.onboardingURL)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Empty(t, c.Token())

	c = New(Options{BaseURL: "https://api.example.com/api/", OnboardingURL: "https://profiles.example.com/"})
	assert.Equal(t, "https://api.example.com/api", c.baseURL)
	assert.Equal(t, "https://profiles.example.com", c.onboardingURL)
}

func TestWithToken_DoesNotMutate(t *testing.T) {
	c := New(Options{})
	authed := c.WithToken("abc")

	assert.Equal(t, "abc", authed.Token())
	assert.Empty(t, c.Token())
}

func TestLogin_Success(t *testing.T) {
	c, backend := setupTestClient(t)

	resp, err := c.Login(context.Background(), types.LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, apitest.Token, resp.Token)
	assert.Equal(t, "Ada Lovelace", resp.User.Name())
	assert.Equal(t, []string{"POST /auth/login"}, backend.Calls())
}

func TestLogin_ServerMessage(t *testing.T) {
	c, _ := setupTestClient(t)

	_, err := c.Login(context.Background(), types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "Invalid credentials", UserMessage(err, "Unable to log in"))
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestRegister_Conflict(t *testing.T) {
	c, _ := setupTestClient(t)

	_, err := c.Register(context.Background(), types.RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Email already registered", UserMessage(err, "Unable to register"))
}

func TestErrorMessage_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		failure apitest.Failure
		want    string
	}{
		{
			name:    "json without message",
			failure: apitest.Failure{Status: http.StatusInternalServerError, Body: `{"error":"boom"}`, JSON: true},
			want:    DefaultErrorMessage,
		},
		{
			name:    "non-json body",
			failure: apitest.Failure{Status: http.StatusBadGateway, Body: "<html>bad gateway</html>"},
			want:    DefaultErrorMessage,
		},
		{
			name:    "json labelled but malformed",
			failure: apitest.Failure{Status: http.StatusBadRequest, Body: "{oops", JSON: true},
			want:    DefaultErrorMessage,
		},
		{
			name:    "json with message",
			failure: apitest.Failure{Status: http.StatusBadRequest, Body: `{"message":"Age is invalid"}`, JSON: true},
			want:    "Age is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, backend := setupTestClient(t)
			backend.Fail("GET /onboarding", tt.failure)

			_, err := c.WithToken(apitest.Token).FetchProfile(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.failure.Status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestTransportError_UsesFallback(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := New(Options{BaseURL: url})
	_, err := c.Login(context.Background(), types.LoginRequest{Email: "a", Password: "b"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Equal(t, "Unable to log in", UserMessage(err, "Unable to log in"))
}

func TestBearerHeader(t *testing.T) {
	c, backend := setupTestClient(t)

	_, err := c.Me(context.Background())
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	resp, err := c.WithToken(apitest.Token).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, 2, backend.CallCount("GET /auth/me"))
}

func TestUpdateAccount(t *testing.T) {
	c, backend := setupTestClient(t)

	resp, err := c.WithToken(apitest.Token).UpdateAccount(context.Background(), types.AccountUpdate{
		FullName:        "Ada King",
		Email:           "ada@king.dev",
		CurrentPassword: "secret",
		NewPassword:     "n3w",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada King", resp.User.Name())
	assert.Equal(t, "ada@king.dev", backend.User().Email)
}

func TestSaveOnboarding_RoundTrip(t *testing.T) {
	c, _ := setupTestClient(t)
	authed := c.WithToken(apitest.Token)

	want := types.ProfileData{
		FullName:       "Ada Lovelace",
		Age:            "23-27",
		Location:       "London",
		CurrentRole:    "Software Engineer",
		Education:      "Bachelor's Degree",
		FieldOfStudy:   "Mathematics",
		GraduationYear: "2020",
		Certifications: []string{"AWS SAA", "CKA"},
		EducationalBackground: []types.EducationEntry{
			{Institution: "MIT", Degree: "BSc", Field: "CS", StartYear: "2016", EndYear: "2020"},
			{Institution: "ETH", Degree: "MSc", Field: "ML", StartYear: "2021", IsCurrent: true},
		},
		ExperienceLevel: "3-5 years",
		PreviousRoles: []types.PreviousRole{
			{Title: "Engineer", Company: "Acme", StartMonth: "May", StartYear: "2019", EndMonth: "June", EndYear: "2021", Description: "APIs"},
			{Title: "Lead", Company: "Initech", StartMonth: "July", StartYear: "2021", IsPresent: true},
		},
		TechnicalSkills:     []string{"Go", "SQL", "Go"},
		SoftSkills:          []string{"Mentoring"},
		SkillsToImprove:     []string{"Rust"},
		CareerGoals:         []string{"Work remotely", "Lead a team"},
		Timeframe:           "6-12 months",
		PreferredIndustries: []string{"Technology", "Finance"},
		WorkPreference:      "Remote",
	}

	msg, err := authed.SaveOnboarding(context.Background(), want)
	require.NoError(t, err)
	assert.Equal(t, "Onboarding saved", msg.Message)

	resp, err := authed.FetchProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, want, types.DecodeProfileData(resp.Data))
}

func TestSaveOnboarding_SchemaRejectionSendsNothing(t *testing.T) {
	c, backend := setupTestClient(t)

	_, err := c.WithToken(apitest.Token).SaveOnboarding(context.Background(), map[string]any{
		"careerGoals": "not a list",
	})
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
	assert.Zero(t, backend.CallCount("POST /onboarding"))
}

func TestOnboardingURL_Override(t *testing.T) {
	auth := apitest.NewBackend(t)
	profiles := apitest.NewBackend(t)

	c := New(Options{BaseURL: auth.URL(), OnboardingURL: profiles.URL()}).WithToken(apitest.Token)

	_, err := c.FetchProfile(context.Background())
	require.NoError(t, err)
	_, err = c.Login(context.Background(), types.LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /auth/login"}, auth.Calls())
	assert.Equal(t, []string{"GET /onboarding"}, profiles.Calls())
}
