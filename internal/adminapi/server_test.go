package adminapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"artha/pkg/config"
)

func newDemoApp() *App {
	return New(zap.NewNop().Sugar(), nil, nil, config.Config{DefaultSubdomain: "shivaos"})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newDemoApp().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

// Without a database every admin route answers 503, not a panic or a 404.
func TestAdminRoutesRequireDB(t *testing.T) {
	app := newDemoApp()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/admin/brand"},
		{http.MethodGet, "/admin/projects"},
		{http.MethodGet, "/admin/investors"},
	} {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/admin/brand", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	rec := httptest.NewRecorder()
	newDemoApp().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/brand", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	newDemoApp().Handler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
