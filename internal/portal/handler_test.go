package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"artha/internal/rera"
	"artha/pkg/brands"
	"artha/pkg/middleware"
)

type fixedBrandStore struct{ brands map[string]brands.Brand }

func (f fixedBrandStore) Lookup(_ context.Context, key string) brands.Lookup {
	if b, ok := f.brands[key]; ok {
		return brands.Found(b)
	}
	return brands.NotFound()
}

func newTestRouter(t *testing.T, brandStore brands.Store) http.Handler {
	t.Helper()
	resolver := brands.Resolver{RootDomain: "artha.io", DefaultSlug: "shivaos"}
	svc := brands.NewService(brandStore, resolver, brands.DemoBrand(), time.Second, "test", zap.NewNop().Sugar())
	h := NewHandlers(NewMemoryStore("shivaos"), svc, rera.NewMockClient(), nil, zap.NewNop().Sugar())

	r := chi.NewRouter()
	r.Use(middleware.WithSubdomain(resolver))
	h.RegisterRoutes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, host, path string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://"+host+path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestGetBrand_TierGatesApplied(t *testing.T) {
	store := fixedBrandStore{brands: map[string]brands.Brand{
		"starter": {Subdomain: "starter", Name: "Starter Build", Tier: brands.TierStarter, ShowPoweredBy: false, CustomDomain: "x.example.com"},
		"growth":  {Subdomain: "growth", Name: "Growth Build", Tier: brands.TierGrowth, ShowPoweredBy: false, CustomDomain: "y.example.com"},
		"bigco":   {Subdomain: "bigco", Name: "Big Co", Tier: brands.TierEnterprise, ShowPoweredBy: false, CustomDomain: "invest.bigco.com"},
	}}
	router := newTestRouter(t, store)

	get := func(host string) map[string]any {
		rec, env := doGet(t, router, host, "/api/brand")
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)
		return env.Data.(map[string]any)
	}

	starter := get("starter.artha.io")
	assert.Equal(t, true, starter["show_powered_by"], "starter cannot hide the badge")
	assert.Equal(t, false, starter["custom_domain_active"])

	growth := get("growth.artha.io")
	assert.Equal(t, false, growth["show_powered_by"])
	assert.Equal(t, false, growth["custom_domain_active"])

	bigco := get("bigco.artha.io")
	assert.Equal(t, false, bigco["show_powered_by"])
	assert.Equal(t, true, bigco["custom_domain_active"])
}

func TestGetBrand_UnknownHostServesDefault(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	for _, host := range []string{"unknown.artha.io", "invest.customco.com"} {
		rec, env := doGet(t, router, host, "/api/brand")
		require.Equal(t, http.StatusOK, rec.Code, host)
		data := env.Data.(map[string]any)
		assert.Equal(t, "shivaos", data["subdomain"], host)
		assert.Equal(t, "Shiva Estate", data["name"], host)
		assert.Equal(t, brands.DefaultPrimaryColor, data["primary_color"], host)
	}
}

func TestListProjects_ScopedByHost(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	rec, env := doGet(t, router, "shivaos.artha.io", "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Data.([]any), 2)

	// Another builder's host sees none of the demo data.
	_, env = doGet(t, router, "greenfield.artha.io", "/api/projects")
	assert.Empty(t, env.Data.([]any))
}

func TestGetDashboard_DemoInvestor(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	rec, env := doGet(t, router, "localhost:3000", "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]any)
	investor := data["investor"].(map[string]any)
	assert.Equal(t, "Priya Nair", investor["name"])
	summary := data["summary"].(map[string]any)
	assert.Equal(t, 18_500_000.0, summary["total_invested"])
}

func TestGetProjectRERA(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	projects, err := NewMemoryStore("shivaos").ListProjects(context.Background(), "shivaos")
	require.NoError(t, err)

	rec, env := doGet(t, router, "shivaos.artha.io", "/api/projects/"+projects[0].ID+"/rera")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, true, data["is_registered"])
	assert.Equal(t, "ShivaOS Skyline", data["rera_project_name"])

	rec, env = doGet(t, router, "shivaos.artha.io", "/api/projects/missing/rera")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestGetSession_DemoMode(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	rec, env := doGet(t, router, "localhost", "/api/auth/session")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, false, data["authenticated"])
	assert.Equal(t, true, data["demo"])
}

func TestPostSession_Logout(t *testing.T) {
	router := newTestRouter(t, fixedBrandStore{brands: map[string]brands.Brand{}})

	req := httptest.NewRequest(http.MethodPost, "http://localhost/api/auth/session",
		strings.NewReader(`{"action":"logout"}`))
	req.Host = "localhost"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := 0
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared++
		}
	}
	assert.Equal(t, 2, cleared)
}
