package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/skillsync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(&config.SessionConfig{
		Secret:     "test-secret-key-for-session-signing-32b",
		MaxAgeDays: 1,
	})
}

// carry returns a new request that sends the cookies set on rec.
func carry(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := setupTestStore(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, store.Save(rec, req, State{Token: "opaque", OnboardingComplete: true}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	st, err := store.Load(carry(rec))
	require.NoError(t, err)
	assert.Equal(t, State{Token: "opaque", OnboardingComplete: true}, st)
}

func TestStore_LoadWithoutCookie(t *testing.T) {
	store := setupTestStore(t)

	st, err := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, State{}, st)
	assert.Equal(t, RouteLogin, DecideInitialRoute(st))
}

func TestStore_ForeignCookieStartsFresh(t *testing.T) {
	store := setupTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})

	st, err := store.Load(req)
	require.NoError(t, err)
	assert.Equal(t, State{}, st)
}

func TestStore_ExpiredTokenDropped(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	expired := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))})

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), State{Token: expired, OnboardingComplete: true}))

	st, err := store.Load(carry(rec))
	require.NoError(t, err)
	assert.Empty(t, st.Token)
	assert.True(t, st.OnboardingComplete)
	assert.Equal(t, RouteLogin, DecideInitialRoute(st))
}

func TestStore_Clear(t *testing.T) {
	store := setupTestStore(t)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), State{Token: "t", OnboardingComplete: true}))

	rec2 := httptest.NewRecorder()
	require.NoError(t, store.Clear(rec2, carry(rec)))

	st, err := store.Load(carry(rec2))
	require.NoError(t, err)
	assert.Equal(t, State{}, st)
}

func TestStore_DraftIDStable(t *testing.T) {
	store := setupTestStore(t)

	rec := httptest.NewRecorder()
	id, err := store.DraftID(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Len(t, id, 36)

	again, err := store.DraftID(httptest.NewRecorder(), carry(rec))
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestStore_SignInRotatesDraftID(t *testing.T) {
	store := setupTestStore(t)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), State{Token: "first", OnboardingComplete: true}))
	rec1 := httptest.NewRecorder()
	first, err := store.DraftID(rec1, carry(rec))
	require.NoError(t, err)

	rec2 := httptest.NewRecorder()
	previous, err := store.SignIn(rec2, carry(rec1), "second")
	require.NoError(t, err)
	assert.Equal(t, first, previous)

	st, err := store.Load(carry(rec2))
	require.NoError(t, err)
	assert.Equal(t, State{Token: "second"}, st)

	next, err := store.DraftID(httptest.NewRecorder(), carry(rec2))
	require.NoError(t, err)
	assert.NotEqual(t, first, next)
}

func TestStore_SignInWithoutDraft(t *testing.T) {
	store := setupTestStore(t)

	previous, err := store.SignIn(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "token")
	require.NoError(t, err)
	assert.Empty(t, previous)
}

func TestStore_NoticesAreOneShot(t *testing.T) {
	store := setupTestStore(t)

	rec := httptest.NewRecorder()
	want := Notice{Kind: KindSuccess, Title: "Profile updated", Message: ""}
	require.NoError(t, store.AddNotice(rec, httptest.NewRequest(http.MethodGet, "/", nil), want))

	rec2 := httptest.NewRecorder()
	notices, err := store.Notices(rec2, carry(rec))
	require.NoError(t, err)
	assert.Equal(t, []Notice{want}, notices)

	notices, err = store.Notices(httptest.NewRecorder(), carry(rec2))
	require.NoError(t, err)
	assert.Empty(t, notices)
}
