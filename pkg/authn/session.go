// pkg/authn/session.go
package authn

import (
	"net/http"
	"time"
)

// Cookie names carrying the identity-provider tokens.
const (
	AccessCookie  = "artha-access-token"
	RefreshCookie = "artha-refresh-token"
)

// Session is a verified identity-provider session. It lives on the request
// context only and is never persisted.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokensFromRequest reads the raw access/refresh tokens from request cookies.
func TokensFromRequest(r *http.Request) (access, refresh string) {
	if c, err := r.Cookie(AccessCookie); err == nil {
		access = c.Value
	}
	if c, err := r.Cookie(RefreshCookie); err == nil {
		refresh = c.Value
	}
	return access, refresh
}

// WriteCookies persists a (possibly refreshed) session on the outgoing
// response so subsequent requests carry the new tokens.
func WriteCookies(w http.ResponseWriter, s Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 3600
	}
	http.SetCookie(w, &http.Cookie{
		Name: AccessCookie, Value: s.AccessToken, Path: "/",
		MaxAge: maxAge, HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	if s.RefreshToken != "" {
		http.SetCookie(w, &http.Cookie{
			Name: RefreshCookie, Value: s.RefreshToken, Path: "/",
			MaxAge: 30 * 24 * 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode,
		})
	}
}

// ClearCookies expires both session cookies (logout).
func ClearCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessCookie, RefreshCookie} {
		http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	}
}
