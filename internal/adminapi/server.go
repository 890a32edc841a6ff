package adminapi

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handler builds the HTTP handler with routes and middleware.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Logger, chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	allowed := []string{"http://localhost:3001"}
	if v := strings.TrimSpace(os.Getenv("ADMIN_CORS_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		tmp := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			allowed = tmp
		}
	}

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(cors(allowed))
		ar.Use(a.adminAuth)
		ar.Use(a.requireDB)
		ar.Get("/brand", a.getBrand)
		ar.Put("/brand", a.putBrand)
		ar.Get("/projects", a.listProjects)
		ar.Post("/projects", a.createProject)
		ar.Put("/projects/{id}", a.updateProject)
		ar.Delete("/projects/{id}", a.deleteProject)
		ar.Post("/projects/{id}/updates", a.postUpdate)
		ar.Get("/investors", a.listInvestors)
	})

	return r
}

// requireDB guards write paths in demo deployments with no database.
func (a *App) requireDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.db == nil {
			http.Error(w, "admin api requires a database", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
