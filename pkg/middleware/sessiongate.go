// pkg/middleware/sessiongate.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"artha/pkg/authn"
	"artha/pkg/config"
)

type ctxSessionKey struct{}

// Public paths bypass the session check unconditionally: login pages, the
// API surface (which carries its own auth where needed), static assets, and
// operational endpoints. Operational endpoints match exactly; login pages
// match themselves and their subtree; everything else is a true prefix.
var (
	publicExact = []string{
		"/healthz",
		"/metrics",
	}
	publicPages = []string{
		"/login",
		"/builder-login",
	}
	publicPrefixes = []string{
		"/api/",
		"/static/",
		"/favicon",
		"/.well-known/",
	}
)

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range publicExact {
		if path == p {
			return true
		}
	}
	for _, p := range publicPages {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// SessionGate enforces the authentication policy chosen once at process
// configuration time:
//
//   - Demo mode (no identity-provider credentials): every request passes
//     through unauthenticated. The product stays fully explorable without any
//     deployed infrastructure. A deliberate trust trade-off, not an oversight.
//   - Auth-enforced mode: non-public paths require a valid session; the token
//     is transparently refreshed and re-set as cookies. Missing or expired
//     sessions redirect to the login path.
//
// When the identity provider itself is unreachable the gate fails closed
// (redirect to login) unless AUTH_FAIL_OPEN is set.
func SessionGate(cfg config.Config, client *authn.Client, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	if cfg.DemoAuth() {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			access, refresh := authn.TokensFromRequest(r)
			sess, refreshed, err := client.VerifySession(r.Context(), access, refresh)
			if err != nil {
				var unreach authn.ErrUnreachable
				if errors.As(err, &unreach) {
					log.Warnw("session check unreachable", "err", err, "fail_open", cfg.AuthFailOpen)
					if cfg.AuthFailOpen {
						next.ServeHTTP(w, r)
						return
					}
				}
				http.Redirect(w, r, loginURL(cfg.LoginPath, r.URL.Path), http.StatusTemporaryRedirect)
				return
			}
			if refreshed {
				authn.WriteCookies(w, sess)
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// loginURL preserves the requested path so the login page can send the user
// back after authenticating.
func loginURL(loginPath, requested string) string {
	if requested == "" || requested == "/" || requested == loginPath {
		return loginPath
	}
	return loginPath + "?return_to=" + url.QueryEscape(requested)
}

// SessionFrom returns the authenticated session, or nil in demo mode and on
// public paths.
func SessionFrom(ctx context.Context) *authn.Session {
	if v := ctx.Value(ctxSessionKey{}); v != nil {
		s := v.(authn.Session)
		return &s
	}
	return nil
}
