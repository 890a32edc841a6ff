package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"artha/pkg/authn"
	"artha/pkg/brands"
	"artha/pkg/config"
)

func gateConfig(authURL string) config.Config {
	return config.Config{
		AuthURL:     authURL,
		AuthAnonKey: "anon-key",
		LoginPath:   "/login",
	}
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionGate_DemoModePassThrough(t *testing.T) {
	cfg := config.Config{LoginPath: "/login"} // no provider creds -> demo
	var hit bool
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, hit)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGate_PublicPathsBypass(t *testing.T) {
	cfg := gateConfig("http://auth.invalid")
	var hit bool
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))

	for _, path := range []string{"/", "/login", "/login/forgot", "/builder-login", "/api/brand", "/favicon.ico", "/healthz", "/metrics"} {
		hit = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.True(t, hit, "expected %s to bypass the gate", path)
	}
}

// Paths that merely start with a public path's text are still gated.
func TestSessionGate_LookalikePathsAreGated(t *testing.T) {
	cfg := gateConfig("http://auth.invalid")
	var hit bool
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))

	for _, path := range []string{"/metricsfoo", "/healthzz", "/loginx", "/builder-loginx"} {
		hit = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.False(t, hit, "expected %s to be gated", path)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, path)
	}
}

// The subdomain middleware runs before the gate, so even a redirected request
// has its builder slug resolved and the internal header set.
func TestSessionGate_RedirectStillCarriesSubdomain(t *testing.T) {
	cfg := gateConfig("http://auth.invalid")
	resolver := brands.Resolver{RootDomain: "artha.io", DefaultSlug: "shivaos"}
	var hit bool
	h := WithSubdomain(resolver)(SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit)))

	req := httptest.NewRequest(http.MethodGet, "http://greenfield.artha.io/dashboard", nil)
	req.Host = "greenfield.artha.io"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, hit)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "greenfield", req.Header.Get(SubdomainHeader))
}

func TestSessionGate_NoSessionRedirects(t *testing.T) {
	cfg := gateConfig("http://auth.invalid")
	var hit bool
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.False(t, hit)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login?return_to=%2Fdashboard", rec.Header().Get("Location"))
}

func TestSessionGate_ValidSessionPasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "priya@example.com"})
	}))
	defer srv.Close()

	cfg := gateConfig(srv.URL)
	var sess *authn.Session
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess = SessionFrom(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: authn.AccessCookie, Value: "token"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if assert.NotNil(t, sess) {
		assert.Equal(t, "user-1", sess.UserID)
		assert.Equal(t, "priya@example.com", sess.Email)
	}
}

// Provider down: the default is fail-closed, AUTH_FAIL_OPEN flips it.
func TestSessionGate_UnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.AddCookie(&http.Cookie{Name: authn.AccessCookie, Value: "token"})
		return r
	}

	t.Run("fail closed by default", func(t *testing.T) {
		cfg := gateConfig(srv.URL)
		var hit bool
		h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req())
		assert.False(t, hit)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})

	t.Run("fail open when configured", func(t *testing.T) {
		cfg := gateConfig(srv.URL)
		cfg.AuthFailOpen = true
		var hit bool
		h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req())
		assert.True(t, hit)
	})
}

func TestSessionGate_RefreshSetsCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/user":
			w.WriteHeader(http.StatusUnauthorized)
		case "/auth/v1/token":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "new-access",
				"refresh_token": "new-refresh",
				"expires_in":    3600,
				"user":          map[string]string{"id": "user-1", "email": "priya@example.com"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := gateConfig(srv.URL)
	var hit bool
	h := SessionGate(cfg, authn.NewClient(cfg), zap.NewNop().Sugar())(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: authn.AccessCookie, Value: "stale"})
	req.AddCookie(&http.Cookie{Name: authn.RefreshCookie, Value: "refresh-1"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, hit)
	cookies := rec.Result().Cookies()
	byName := map[string]string{}
	for _, c := range cookies {
		byName[c.Name] = c.Value
	}
	assert.Equal(t, "new-access", byName[authn.AccessCookie])
	assert.Equal(t, "new-refresh", byName[authn.RefreshCookie])
}
