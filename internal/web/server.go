// Package web serves the SkillSync pages: the auth forms, the onboarding
// wizard, the dashboard and the profile editor. Browser state lives in the
// session cookie and the draft store; all data comes from the REST backend.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/schema"
	"github.com/jonathan/skillsync/internal/apiclient"
	"github.com/jonathan/skillsync/internal/config"
	"github.com/jonathan/skillsync/internal/drafts"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/web/ratelimit"
	"go.uber.org/zap"
)

// Deps are the collaborators the server is built from.
type Deps struct {
	Logger      *zap.Logger
	Sessions    *session.Store
	Drafts      drafts.Store
	Images      *config.ImageConfig
	API         *apiclient.Client
	RateLimiter *ratelimit.Limiter
}

// Server is the SkillSync web front-end.
type Server struct {
	httpServer  *http.Server
	logger      *zap.Logger
	sessions    *session.Store
	drafts      drafts.Store
	images      *config.ImageConfig
	api         *apiclient.Client
	rateLimiter *ratelimit.Limiter
	pages       map[string]*template.Template
	decoder     *schema.Decoder
	now         func() time.Time
}

// New creates a server listening on cfg.Port.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if deps.API == nil {
		return nil, errors.New("api client is required")
	}

	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		logger:      deps.Logger,
		sessions:    deps.Sessions,
		drafts:      deps.Drafts,
		images:      deps.Images,
		api:         deps.API,
		rateLimiter: deps.RateLimiter,
		pages:       pages,
		decoder:     newDecoder(),
		now:         time.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.drafts == nil {
		s.drafts = drafts.NewMemoryStore(cfg.DraftTTL())
	}
	if s.images == nil {
		s.images = &config.ImageConfig{MaxBytes: config.DefaultImageMaxBytes, AllowedTypes: config.DefaultImageTypes}
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /auth/login", s.handleLoginPage)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/register", s.handleRegisterPage)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)

	mux.HandleFunc("GET /onboarding", s.handleOnboardingPage)
	mux.HandleFunc("POST /onboarding", s.handleOnboarding)

	mux.HandleFunc("GET /dashboard", s.handleDashboard)

	mux.HandleFunc("GET /profile", s.handleProfile)
	mux.HandleFunc("GET /profile/edit/{section}", s.handleProfileEditPage)
	mux.HandleFunc("POST /profile/edit/{section}", s.handleProfileEdit)

	return s.withRateLimit(s.withLogging(mux))
}

// Start begins listening and blocks until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// statusRecorder captures the status code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the remote IP. Forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
	}
	s.logger.Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime),
	)
	http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, session.DecideInitialRoute(s.state(r)))
}

// state loads the session flags. An unreadable cookie counts as signed out.
func (s *Server) state(r *http.Request) session.State {
	st, err := s.sessions.Load(r)
	if err != nil {
		s.logger.Warn("failed to load session", zap.Error(err))
		return session.State{}
	}
	return st
}

// guard loads the session and redirects when page may not render for it.
func (s *Server) guard(w http.ResponseWriter, r *http.Request, page session.Route) (session.State, bool) {
	st := s.state(r)
	if to, ok := session.Guard(page, st); !ok {
		s.redirect(w, r, to)
		return st, false
	}
	return st, true
}

func (s *Server) saveState(w http.ResponseWriter, r *http.Request, st session.State) {
	if err := s.sessions.Save(w, r, st); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
	}
}

func (s *Server) notify(w http.ResponseWriter, r *http.Request, n session.Notice) {
	if err := s.sessions.AddNotice(w, r, n); err != nil {
		s.logger.Error("failed to queue notice", zap.Error(err), zap.String("title", n.Title))
	}
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, to session.Route) {
	http.Redirect(w, r, string(to), http.StatusSeeOther)
}

// client returns the backend client authenticated as st.
func (s *Server) client(st session.State) *apiclient.Client {
	return s.api.WithToken(st.Token)
}

// draftKey returns the draft store key of kind for this browser.
func (s *Server) draftKey(w http.ResponseWriter, r *http.Request, kind string) (string, error) {
	id, err := s.sessions.DraftID(w, r)
	if err != nil {
		return "", err
	}
	return drafts.Key(kind, id), nil
}

// signOutIfRejected ends the session when the backend rejected the token.
// It reports whether the browser was redirected.
func (s *Server) signOutIfRejected(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apiclient.IsStatus(err, http.StatusUnauthorized) {
		return false
	}
	if clearErr := s.sessions.Clear(w, r); clearErr != nil {
		s.logger.Error("failed to clear session", zap.Error(clearErr))
	}
	s.notify(w, r, session.Notice{Kind: session.KindInfo, Title: sessionExpiredTitle, Message: sessionExpiredMessage})
	s.redirect(w, r, session.RouteLogin)
	return true
}
