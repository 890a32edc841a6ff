package adminapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type ctxBuilderKey struct{}

// mustJWKS fetches JWKS and panics on failure.
func mustJWKS(url string) jwk.Set {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	set, err := jwk.Fetch(ctx, url)
	if err != nil {
		panic(err)
	}
	return set
}

// adminAuth validates the bearer token and attaches the caller's builder ID.
// With no admin JWKS configured the API runs in demo mode and scopes every
// request to the default builder.
func (a *App) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.adminJWKS == nil {
			ctx := context.WithValue(r.Context(), ctxBuilderKey{}, a.demoBuilder)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			http.Error(w, "missing bearer", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimSpace(authz[len("Bearer "):])
		opts := []jwt.ParseOption{jwt.WithKeySet(a.adminJWKS), jwt.WithValidate(true), jwt.WithVerify(true)}
		if a.adminIssuer != "" {
			opts = append(opts, jwt.WithIssuer(a.adminIssuer))
		}
		if a.adminAud != "" {
			opts = append(opts, jwt.WithAudience(a.adminAud))
		}
		jt, err := jwt.Parse([]byte(raw), opts...)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		slug := ""
		if v, ok := jt.Get("builder"); ok {
			slug, _ = v.(string)
		}
		if slug == "" {
			http.Error(w, "token missing builder claim", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), ctxBuilderKey{}, slug)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// builderFrom returns the authenticated builder slug for this request.
func builderFrom(ctx context.Context) string {
	if v := ctx.Value(ctxBuilderKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// cors returns a middleware that sets CORS headers and handles preflight
// requests. allowed may contain exact origins or "*" to allow all.
func cors(allowed []string) func(http.Handler) http.Handler {
	match := func(origin string) (string, bool) {
		if origin == "" {
			return "", false
		}
		for _, a := range allowed {
			a = strings.TrimSpace(a)
			if a == "*" || a == origin {
				return a, true
			}
		}
		return "", false
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if ao, ok := match(origin); ok {
				allowOrigin := ao
				if allowOrigin == "*" {
					allowOrigin = origin
				}
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
