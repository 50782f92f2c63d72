package web

import (
	"net/http"
	"strings"

	"github.com/jonathan/skillsync/internal/drafts"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
)

// authView is the login and register form. Passwords are never echoed back.
type authView struct {
	FullName string
	Email    string
}

type loginForm struct {
	Email    string `schema:"email"`
	Password string `schema:"password"`
}

type registerForm struct {
	FullName string `schema:"fullName"`
	Email    string `schema:"email"`
	Password string `schema:"password"`
}

// decodeForm reads a urlencoded post into dst. Unreadable input leaves dst
// empty and fails validation downstream.
func (s *Server) decodeForm(r *http.Request, dst any) {
	if err := r.ParseForm(); err != nil {
		s.logger.Debug("failed to parse form", zap.Error(err))
		return
	}
	if err := s.decoder.Decode(dst, r.PostForm); err != nil {
		s.logger.Debug("failed to decode form", zap.Error(err))
	}
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", pageData{Title: "Sign in", Content: authView{}})
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", pageData{Title: "Create account", Content: authView{}})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	s.decodeForm(r, &form)
	req := types.LoginRequest{Email: strings.TrimSpace(form.Email), Password: form.Password}
	view := authView{Email: req.Email}

	if messages := types.ValidationMessages(&req); len(messages) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, "login", pageData{
			Title:   "Sign in",
			Notices: []session.Notice{messagesNotice(loginFailedTitle, messages)},
			Content: view,
		})
		return
	}

	resp, err := s.api.Login(r.Context(), req)
	if err != nil {
		s.logger.Info("login failed", zap.Error(err))
		s.render(w, r, http.StatusOK, "login", pageData{
			Title:   "Sign in",
			Notices: []session.Notice{errorNotice(err, loginFailedTitle, loginFailedTitle)},
			Content: view,
		})
		return
	}

	message := "Welcome back!"
	if name := resp.User.Name(); name != "" {
		message = "Welcome back, " + name + "!"
	}
	s.signIn(w, r, resp.Token, session.Notice{Kind: session.KindSuccess, Title: loginTitle, Message: message})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	s.decodeForm(r, &form)
	req := types.RegisterRequest{
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	}
	view := authView{FullName: req.FullName, Email: req.Email}

	if messages := types.ValidationMessages(&req); len(messages) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, "register", pageData{
			Title:   "Create account",
			Notices: []session.Notice{messagesNotice(registerFailedTitle, messages)},
			Content: view,
		})
		return
	}

	resp, err := s.api.Register(r.Context(), req)
	if err != nil {
		s.logger.Info("registration failed", zap.Error(err))
		s.render(w, r, http.StatusOK, "register", pageData{
			Title:   "Create account",
			Notices: []session.Notice{errorNotice(err, registerFailedTitle, registerFailedTitle)},
			Content: view,
		})
		return
	}

	name := resp.User.Name()
	if name == "" {
		name = resp.User.Email
	}
	s.signIn(w, r, resp.Token, session.Notice{Kind: session.KindSuccess, Title: registerTitle, Message: "Welcome aboard, " + name + "!"})
}

// signIn stores the token and sends the browser to the wizard, which moves on
// to the dashboard when the backend reports onboarding as done. Drafts left by
// an earlier sign-in in this browser are deleted.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, token string, welcome session.Notice) {
	previous, err := s.sessions.SignIn(w, r, token)
	if err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
	}
	if previous != "" {
		s.deleteDrafts(r, previous)
	}
	s.notify(w, r, welcome)
	s.redirect(w, r, session.RouteOnboarding)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if id, err := s.sessions.DraftID(w, r); err == nil {
		s.deleteDrafts(r, id)
	}
	if err := s.sessions.Clear(w, r); err != nil {
		s.logger.Error("failed to clear session", zap.Error(err))
	}
	s.redirect(w, r, session.RouteLogin)
}

// deleteDrafts removes the wizard and profile drafts stored under draftID.
func (s *Server) deleteDrafts(r *http.Request, draftID string) {
	for _, kind := range []string{wizardDraftKind, profileDraftKind} {
		if err := s.drafts.Delete(r.Context(), drafts.Key(kind, draftID)); err != nil {
			s.logger.Warn("failed to delete draft", zap.String("kind", kind), zap.Error(err))
		}
	}
}
