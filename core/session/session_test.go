package session

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "42",
	}).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func TestSessionValid(t *testing.T) {
	usr := &school.User{ID: 1, Name: "Aarav Shah"}

	assert.False(t, Session{}.Valid())
	assert.False(t, Session{User: usr}.Valid())
	assert.False(t, Session{Token: "tok"}.Valid())
	assert.True(t, Session{User: usr, Token: "tok"}.Valid())
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		expired bool
	}{
		{"future exp", func(t *testing.T) string { return signedToken(t, now.Add(time.Hour)) }, false},
		{"past exp", func(t *testing.T) string { return signedToken(t, now.Add(-time.Hour)) }, true},
		{"opaque token", func(*testing.T) string { return "not-a-jwt" }, false},
		{"no exp claim", func(t *testing.T) string {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).SignedString(testSecret)
			require.NoError(t, err)
			return token
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tokenExpired(tt.token(t)))
		})
	}
}

// restoreFrom replays the cookies written to rec on a fresh request.
func restoreFrom(cs *CookieStore, rec *httptest.ResponseRecorder) Session {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return cs.Restore(req)
}

func TestCookieStore(t *testing.T) {
	cs := NewCookieStore(testSecret, false)
	usr := school.User{ID: 7, Name: "Aarav Shah", Username: "aarav", Role: school.RoleTeacher}
	token := signedToken(t, time.Now().Add(time.Hour))

	// no cookie -> empty session
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, cs.Restore(req).Valid())

	// set then restore round-trips user and token together
	rec := httptest.NewRecorder()
	require.NoError(t, cs.Set(req, rec, usr, token))

	sess := restoreFrom(cs, rec)
	require.True(t, sess.Valid())
	assert.Equal(t, usr, *sess.User)
	assert.Equal(t, token, sess.Token)

	// clear drops both values and expires the cookie
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	require.NoError(t, cs.Clear(req2, rec2))

	cleared := rec2.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.True(t, cleared[0].MaxAge < 0)
	assert.False(t, restoreFrom(cs, rec2).Valid())
}

func TestCookieStoreRejectsPartialOrBrokenValues(t *testing.T) {
	cs := NewCookieStore(testSecret, false)
	token := signedToken(t, time.Now().Add(time.Hour))

	tests := []struct {
		name string
		set  func(values map[interface{}]interface{})
	}{
		{"user without token", func(v map[interface{}]interface{}) {
			v[userKey] = `{"id":7}`
		}},
		{"token without user", func(v map[interface{}]interface{}) {
			v[tokenKey] = token
		}},
		{"malformed user json", func(v map[interface{}]interface{}) {
			v[userKey] = `{"id":`
			v[tokenKey] = token
		}},
		{"expired token", func(v map[interface{}]interface{}) {
			v[userKey] = `{"id":7}`
			v[tokenKey] = signedToken(t, time.Now().Add(-time.Hour))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			sess, err := cs.store.Get(req, cookieName)
			require.NoError(t, err)
			tt.set(sess.Values)
			require.NoError(t, sess.Save(req, rec))

			assert.False(t, restoreFrom(cs, rec).Valid())
		})
	}
}

func TestCookieStoreIgnoresTamperedCookie(t *testing.T) {
	cs := NewCookieStore(testSecret, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "garbage"})
	assert.False(t, cs.Restore(req).Valid())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStore(path)
	usr := school.User{ID: 3, Name: "Meera Iyer", Username: "meera", Role: school.RoleAdmin}
	token := signedToken(t, time.Now().Add(time.Hour))

	// nothing persisted yet
	assert.False(t, fs.Restore().Valid())

	require.NoError(t, fs.Set(usr, token))
	sess := fs.Restore()
	require.True(t, sess.Valid())
	assert.Equal(t, usr, *sess.User)
	assert.Equal(t, token, sess.Token)

	// the file is private to the user
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, fs.Clear())
	assert.False(t, fs.Restore().Valid())

	// clearing twice is fine
	require.NoError(t, fs.Clear())
}

func TestFileStoreRejectsBrokenFile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "garbage"},
		{"missing token", `{"user":{"id":3}}`},
		{"missing user", `{"token":"tok"}`},
		{"malformed user", `{"user":"nope","token":"tok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o600))
			assert.False(t, NewFileStore(path).Restore().Valid())
		})
	}
}
