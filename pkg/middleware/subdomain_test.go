package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"artha/pkg/brands"
)

func TestWithSubdomain(t *testing.T) {
	resolver := brands.Resolver{RootDomain: "artha.io", PreviewSuffix: ".vercel.app", DefaultSlug: "shivaos"}

	var gotHeader, gotCtx string
	h := WithSubdomain(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(SubdomainHeader)
		gotCtx = SlugFrom(r.Context())
	}))

	tests := []struct {
		host string
		want string
	}{
		{"greenfield.artha.io", "greenfield"},
		{"localhost:3000", "shivaos"},
		{"invest.shivaestate.com", "invest.shivaestate.com"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/", nil)
		req.Host = tt.host
		// A spoofed inbound header must be overwritten.
		req.Header.Set(SubdomainHeader, "evil")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tt.want, gotHeader, "header for %s", tt.host)
		assert.Equal(t, tt.want, gotCtx, "context for %s", tt.host)
	}
}

func TestSlugFrom_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", SlugFrom(req.Context()))
}
