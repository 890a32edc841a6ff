// pkg/brands/resolver.go
package brands

import "strings"

// Resolver maps a raw request hostname to a builder subdomain. It is pure and
// never fails: unknown hosts come back as candidate custom domains for the
// store to resolve, everything local or platform-owned collapses to a slug.
//
//	shivaos.artha.io        -> "shivaos"
//	shivaos.localhost:3000  -> "shivaos"
//	localhost:3000          -> DefaultSlug
//	*.vercel.app            -> DefaultSlug (preview deployments)
//	invest.shivaestate.com  -> "invest.shivaestate.com" (custom domain, full host)
type Resolver struct {
	RootDomain    string // e.g. "artha.io"
	PreviewSuffix string // e.g. ".vercel.app"
	DefaultSlug   string // e.g. "shivaos"
}

// Resolve applies the first matching rule, in order. Platform subdomains are
// checked before the custom-domain fallback, otherwise a legitimate subdomain
// would be mis-treated as a foreign custom domain.
func (r Resolver) Resolve(hostname string) string {
	host := strings.ToLower(hostname)
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	switch {
	case host == "", host == "localhost", host == "127.0.0.1":
		return r.DefaultSlug
	case r.PreviewSuffix != "" && strings.HasSuffix(host, r.PreviewSuffix):
		return r.DefaultSlug
	case strings.HasSuffix(host, "."+r.RootDomain):
		sub := strings.TrimSuffix(host, "."+r.RootDomain)
		if sub == "" {
			return r.DefaultSlug
		}
		return sub
	case host == r.RootDomain:
		return r.DefaultSlug
	case strings.HasSuffix(host, ".localhost"):
		sub := strings.TrimSuffix(host, ".localhost")
		if sub == "" {
			return r.DefaultSlug
		}
		return sub
	default:
		// Candidate custom domain; the brand store resolves it against
		// builders.custom_domain.
		return host
	}
}

// Normalize cleans a slug or custom-domain key before a store lookup: trims
// whitespace, lower-cases, and strips an accidental ".<root domain>" suffix.
func (r Resolver) Normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimSuffix(key, "."+r.RootDomain)
	return key
}
