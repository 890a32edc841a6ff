// internal/manifest/handler.go
package manifest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"artha/pkg/brands"
	"artha/pkg/middleware"
)

func RegisterRoutes(r chi.Router, svc *brands.Service) {
	r.Get("/api/manifest", func(w http.ResponseWriter, req *http.Request) {
		slug := middleware.SlugFrom(req.Context())
		if slug == "" {
			// Cosmetic fallback only; the authoritative slug always comes
			// from the resolver on the connection hostname.
			slug = req.URL.Query().Get("subdomain")
		}
		b := svc.Resolve(req.Context(), slug)
		m := Build(b)
		w.Header().Set("Content-Type", "application/manifest+json")
		// Brand colours rarely change; the TTL matches the brand cache.
		w.Header().Set("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
		_ = json.NewEncoder(w).Encode(m)
	})
}
