package session

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/jonathan/skillsync/internal/config"
)

// CookieName is the name of the session cookie.
const CookieName = "skillsync_session"

const (
	keyToken    = "auth_token"
	keyComplete = "onboarding_complete"
	keyDraft    = "draft_id"
)

// Notice kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Kind    string
	Title   string
	Message string
}

func init() {
	gob.Register(Notice{})
}

// Store reads and writes the session cookie.
type Store struct {
	cookies *sessions.CookieStore
	now     func() time.Time
}

// NewStore creates a cookie-backed session store.
func NewStore(cfg *config.SessionConfig) *Store {
	cookies := sessions.NewCookieStore([]byte(cfg.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAgeSeconds(),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies, now: time.Now}
}

func (s *Store) get(r *http.Request) (*sessions.Session, error) {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil {
		// A cookie signed with an old key decodes to a fresh session.
		if sess != nil && sess.IsNew {
			return sess, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return sess, nil
}

// Load returns the session flags. An expired JWT is dropped so the browser is
// sent back to login.
func (s *Store) Load(r *http.Request) (State, error) {
	sess, err := s.get(r)
	if err != nil {
		return State{}, err
	}

	token, _ := sess.Values[keyToken].(string)
	complete, _ := sess.Values[keyComplete].(bool)
	if token != "" && TokenExpired(token, s.now()) {
		token = ""
	}
	return State{Token: token, OnboardingComplete: complete}, nil
}

// Save persists st in the cookie.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, st State) error {
	sess, err := s.get(r)
	if err != nil {
		return err
	}
	if st.Token == "" {
		delete(sess.Values, keyToken)
	} else {
		sess.Values[keyToken] = st.Token
	}
	sess.Values[keyComplete] = st.OnboardingComplete
	return sess.Save(r, w)
}

// SignIn starts a fresh signed-in session for token: the onboarding flag is
// reset and the draft id is dropped, so drafts of an earlier sign-in are never
// resumed. The dropped id is returned ("" when there was none) for cleanup.
func (s *Store) SignIn(w http.ResponseWriter, r *http.Request, token string) (string, error) {
	sess, err := s.get(r)
	if err != nil {
		return "", err
	}
	previous, _ := sess.Values[keyDraft].(string)
	delete(sess.Values, keyDraft)
	sess.Values[keyToken] = token
	sess.Values[keyComplete] = false
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return previous, nil
}

// Clear signs the browser out. Pending notices survive.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.get(r)
	if err != nil {
		return err
	}
	delete(sess.Values, keyToken)
	delete(sess.Values, keyComplete)
	delete(sess.Values, keyDraft)
	return sess.Save(r, w)
}

// DraftID returns the id under which this browser's drafts are stored,
// creating one on first use.
func (s *Store) DraftID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := s.get(r)
	if err != nil {
		return "", err
	}
	if id, ok := sess.Values[keyDraft].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[keyDraft] = id
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// AddNotice queues n for the next rendered page.
func (s *Store) AddNotice(w http.ResponseWriter, r *http.Request, n Notice) error {
	sess, err := s.get(r)
	if err != nil {
		return err
	}
	sess.AddFlash(n)
	return sess.Save(r, w)
}

// Notices drains the queued notices.
func (s *Store) Notices(w http.ResponseWriter, r *http.Request) ([]Notice, error) {
	sess, err := s.get(r)
	if err != nil {
		return nil, err
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := sess.Save(r, w); err != nil {
		return nil, err
	}

	notices := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices, nil
}
