// Package apitest provides an in-memory stand-in for the SkillSync REST backend.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/skillsync/internal/types"
)

// Token is the bearer token issued by the fake backend.
const Token = "test-token"

// Backend records every call and echoes POST /onboarding bodies back on
// GET /onboarding.
type Backend struct {
	Server *httptest.Server

	mu        sync.Mutex
	user      types.User
	password  string
	data      map[string]any
	completed bool
	calls     []string
	failures  map[string]Failure
}

// Failure is a canned error response for one route.
type Failure struct {
	Status int
	Body   string // written as-is; empty means no body
	JSON   bool   // send Content-Type: application/json
}

// NewBackend starts a fake backend with one registered user. It is closed
// when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	name := "Ada Lovelace"
	b := &Backend{
		user: types.User{
			ID:        "user-1",
			Email:     "ada@example.com",
			FullName:  &name,
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		password: "secret",
		data:     map[string]any{},
		failures: map[string]Failure{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", b.handleLogin)
	mux.HandleFunc("POST /api/auth/register", b.handleRegister)
	mux.HandleFunc("GET /api/auth/me", b.authed(b.handleMe))
	mux.HandleFunc("PUT /api/auth/account", b.authed(b.handleAccount))
	mux.HandleFunc("GET /api/onboarding", b.authed(b.handleGetOnboarding))
	mux.HandleFunc("POST /api/onboarding", b.authed(b.handlePostOnboarding))

	b.Server = httptest.NewServer(b.record(mux))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the API base URL, including the /api prefix.
func (b *Backend) URL() string {
	return b.Server.URL + "/api"
}

// Fail makes every request matching route ("POST /onboarding") return f.
func (b *Backend) Fail(route string, f Failure) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = f
}

// SetData replaces the stored onboarding data and completed flag.
func (b *Backend) SetData(data map[string]any, completed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
	b.completed = completed
}

// Data returns the last stored onboarding data.
func (b *Backend) Data() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// User returns the stored account.
func (b *Backend) User() types.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.user
}

// Calls returns the routes called so far, as "METHOD /path" without the /api prefix.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// CallCount returns how many times route was called.
func (b *Backend) CallCount(route string) int {
	n := 0
	for _, c := range b.Calls() {
		if c == route {
			n++
		}
	}
	return n
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")

		b.mu.Lock()
		b.calls = append(b.calls, route)
		f, failing := b.failures[route]
		b.mu.Unlock()

		if failing {
			if f.JSON {
				w.Header().Set("Content-Type", "application/json")
			}
			w.WriteHeader(f.Status)
			_, _ = w.Write([]byte(f.Body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next(w, r)
	}
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	b.mu.Lock()
	ok := req.Email == b.user.Email && req.Password == b.password
	user := b.user
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, types.AuthResponse{Token: Token, User: user})
}

func (b *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	b.mu.Lock()
	if req.Email == b.user.Email {
		b.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
		return
	}
	name := req.FullName
	b.user = types.User{ID: "user-2", Email: req.Email, FullName: &name, CreatedAt: "2024-02-01T00:00:00Z"}
	b.password = req.Password
	b.data = map[string]any{}
	b.completed = false
	user := b.user
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, types.AuthResponse{Token: Token, User: user})
}

func (b *Backend) handleMe(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.UserResponse{User: b.User()})
}

func (b *Backend) handleAccount(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if np, ok := req["newPassword"]; ok {
		if req["currentPassword"] != b.password {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Current password is incorrect"})
			return
		}
		b.password = np
	}
	name := req["fullName"]
	b.user.FullName = &name
	b.user.Email = req["email"]
	if img := req["profileImage"]; img != "" {
		b.user.ProfileImage = &img
	} else {
		b.user.ProfileImage = nil
	}
	writeJSON(w, http.StatusOK, types.UserResponse{User: b.user})
}

func (b *Backend) handleGetOnboarding(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	resp := types.ProfileResponse{User: b.user, Data: b.data, Completed: b.completed}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (b *Backend) handlePostOnboarding(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	b.mu.Lock()
	b.data = data
	b.completed = true
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Onboarding saved"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
