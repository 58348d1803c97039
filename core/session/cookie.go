package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

const (
	cookieName   = "edutrack-admin"
	cookieMaxAge = 7 * 24 * 60 * 60
)

// CookieStore persists the session in an authenticated browser cookie: one
// value holds the serialized user, one holds the raw token.
type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(secretKey []byte, secure bool) *CookieStore {
	// the codec's validity window tracks the cookie lifetime, so a replayed
	// old cookie fails authentication instead of reviving a session
	codec := securecookie.New(secretKey, nil)
	codec.MaxAge(cookieMaxAge)

	return &CookieStore{store: &sessions.CookieStore{
		Codecs: []securecookie.Codec{codec},
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   cookieMaxAge,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
	}}
}

// Restore reads the persisted user+token. A session is only populated when
// both values are present and well-formed; malformed or expired leftovers are
// treated as no session at all.
func (cs *CookieStore) Restore(r *http.Request) Session {
	sess, err := cs.store.Get(r, cookieName)
	if err != nil {
		return Session{}
	}

	rawUser, uok := sess.Values[userKey].(string)
	token, tok := sess.Values[tokenKey].(string)
	if !uok || !tok || rawUser == "" || token == "" {
		return Session{}
	}

	var usr school.User
	if err := json.Unmarshal([]byte(rawUser), &usr); err != nil {
		return Session{}
	}
	if tokenExpired(token) {
		return Session{}
	}
	return Session{User: &usr, Token: token}
}

// Set stores both values after a successful login.
func (cs *CookieStore) Set(r *http.Request, w http.ResponseWriter, usr school.User, token string) error {
	rawUser, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "serializing session user")
	}
	sess, _ := cs.store.Get(r, cookieName)
	sess.Values[userKey] = string(rawUser)
	sess.Values[tokenKey] = token
	return errors.Wrap(sess.Save(r, w), "saving session cookie")
}

// Clear removes both values (logout and any 401).
func (cs *CookieStore) Clear(r *http.Request, w http.ResponseWriter) error {
	sess, _ := cs.store.Get(r, cookieName)
	delete(sess.Values, userKey)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	return errors.Wrap(sess.Save(r, w), "clearing session cookie")
}
