package brands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolver() Resolver {
	return Resolver{
		RootDomain:    "artha.io",
		PreviewSuffix: ".vercel.app",
		DefaultSlug:   "shivaos",
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name string
		host string
		want string
	}{
		{"platform subdomain", "shivaos.artha.io", "shivaos"},
		{"platform subdomain other builder", "greenfield.artha.io", "greenfield"},
		{"bare root domain", "artha.io", "shivaos"},
		{"localhost", "localhost", "shivaos"},
		{"localhost with port", "localhost:3000", "shivaos"},
		{"loopback ip", "127.0.0.1", "shivaos"},
		{"loopback ip with port", "127.0.0.1:8080", "shivaos"},
		{"empty host", "", "shivaos"},
		{"preview deployment", "artha-git-main-acme.vercel.app", "shivaos"},
		{"local subdomain", "greenfield.localhost", "greenfield"},
		{"local subdomain with port", "greenfield.localhost:3000", "greenfield"},
		{"custom domain passes through whole", "invest.shivaestate.com", "invest.shivaestate.com"},
		{"custom domain with port", "invest.shivaestate.com:443", "invest.shivaestate.com"},
		{"uppercase host lowered", "ShivaOS.Artha.IO", "shivaos"},
		{"deep platform subdomain keeps leftmost labels", "a.b.artha.io", "a.b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.host))
			// Same hostname always yields the same slug.
			assert.Equal(t, tt.want, r.Resolve(tt.host))
		})
	}
}

func TestResolver_Normalize(t *testing.T) {
	r := testResolver()

	tests := []struct {
		in   string
		want string
	}{
		{"shivaos", "shivaos"},
		{"  ShivaOS  ", "shivaos"},
		{"shivaos.artha.io", "shivaos"},
		{"invest.shivaestate.com", "invest.shivaestate.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

// Normalize must be idempotent: normalizing an already-normalized key changes
// nothing, so cache keys stay stable.
func TestResolver_NormalizeIdempotent(t *testing.T) {
	r := testResolver()
	for _, in := range []string{"shivaos", "shivaos.artha.io", "  MIXED.Case ", "invest.shivaestate.com"} {
		once := r.Normalize(in)
		assert.Equal(t, once, r.Normalize(once))
	}
}
