// pkg/middleware/subdomain.go
package middleware

import (
	"context"
	"net/http"

	"artha/pkg/brands"
)

// SubdomainHeader carries the resolved builder slug to downstream handlers.
// Internal-only: it is overwritten on every request from the actual connection
// hostname and must not be trusted if forwarded further.
const SubdomainHeader = "X-Builder-Subdomain"

type ctxSlugKey struct{}

// WithSubdomain resolves the builder subdomain from the request host and
// attaches it to the request context and the internal header. Runs on every
// request, including ones the session gate later redirects, so even the
// login page renders builder-specific branding.
func WithSubdomain(resolver brands.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := resolver.Resolve(r.Host)
			r.Header.Set(SubdomainHeader, slug)
			ctx := context.WithValue(r.Context(), ctxSlugKey{}, slug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SlugFrom returns the builder slug resolved for this request. Handlers read
// this, never a client-supplied tenant identifier, to scope data access.
func SlugFrom(ctx context.Context) string {
	if v := ctx.Value(ctxSlugKey{}); v != nil {
		return v.(string)
	}
	return ""
}
