// Package session is the single source of truth for "who is logged in".
// A session is a backend user plus the bearer token issued for it; the two are
// always persisted and cleared together, never partially.
package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Storage keys; mirrored by every durable store.
const (
	userKey  = "user"
	tokenKey = "token"
)

type Session struct {
	User  *school.User
	Token string
}

// Valid reports whether a user is logged in. The user and token are both
// present or both absent; a half-set session never escapes a store.
func (s Session) Valid() bool {
	return s.User != nil && s.Token != ""
}

var nowFunc = time.Now // mockable

// tokenExpired inspects the (unverified) exp claim of a JWT bearer token.
// The token is verified by the backend on every request; here it is only
// decoded so restore can drop a session that already expired. Opaque tokens
// pass through untouched.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Unix(int64(exp), 0).Before(nowFunc())
}
