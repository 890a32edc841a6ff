package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artha/internal/ai"
	"artha/internal/manifest"
	"artha/internal/portal"
	"artha/internal/rera"
	"artha/pkg/authn"
	"artha/pkg/brands"
	"artha/pkg/config"
	"artha/pkg/db"
	"artha/pkg/logger"
	"artha/pkg/middleware"
)

func main() {
	// 1. Load configuration & initialize structured logger.
	cfg := config.Load()
	appLog := logger.New(cfg.Env)

	// 2. Attempt database / redis connections (both optional; demo mode without).
	dbPool := db.MustConnect(cfg, appLog)
	rdb := db.MustRedis(cfg, appLog)

	// 3. Brand resolution: DB-backed store if a pool is present, otherwise
	//    in-memory seed data. Redis caching wraps whichever store we got.
	fallback := brands.LoadDefaultBrand(cfg.BrandDefaultsFile)
	resolver := brands.Resolver{
		RootDomain:    cfg.RootDomain,
		PreviewSuffix: cfg.PreviewSuffix,
		DefaultSlug:   cfg.DefaultSubdomain,
	}
	var store brands.Store
	if dbPool != nil {
		store = brands.NewPostgresStore(dbPool, appLog)
		_ = brands.EnsureSchema(context.Background(), dbPool)
		_ = portal.EnsureSchema(context.Background(), dbPool)
		_ = brands.SeedFromEnv(context.Background(), dbPool, os.Getenv("BUILDER_SEED_JSON"))
	} else {
		store = brands.NewMemoryStoreFromEnv(fallback, appLog)
	}
	store = brands.NewCachedStore(store, rdb, cfg.BrandCacheTTL)
	brandSvc := brands.NewService(store, resolver, fallback, cfg.BrandLookupTO, cfg.Env, appLog)

	// Portal data follows the same split.
	var portalStore portal.Store
	if dbPool != nil {
		portalStore = portal.NewPostgresStore(dbPool, appLog)
	} else {
		portalStore = portal.NewMemoryStore(fallback.Subdomain)
	}

	// Session client only exists in auth-enforced mode. A nil client keeps
	// session introspection reporting demo mode truthfully.
	var authClient *authn.Client
	if !cfg.DemoAuth() {
		authClient = authn.NewClient(cfg)
	}
	aiClient := ai.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	reraClient := rera.NewMockClient()

	// 4. Build HTTP router and register middlewares.
	router := chi.NewRouter()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recover(appLog))
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Builder-Subdomain")
			w.Header().Set("Access-Control-Max-Age", "86400")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	router.Use(middleware.Tracing("portal-service"))
	router.Use(middleware.WithSubdomain(resolver))
	router.Use(middleware.SessionGate(cfg, authClient, appLog))

	// 5. Basic operational endpoints.
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("pong")) })
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	// 6. Domain routes.
	portal.NewHandlers(portalStore, brandSvc, reraClient, authClient, appLog).RegisterRoutes(router)
	manifest.RegisterRoutes(router, brandSvc)
	ai.RegisterRoutes(router, aiClient, appLog)

	// 7. Configure and start HTTP server asynchronously.
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		appLog.Infow("portal-service listening", "addr", cfg.HTTPAddr, "demo_auth", cfg.DemoAuth(), "demo_data", dbPool == nil)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatalw("ListenAndServe", "err", err)
		}
	}()

	// 8. Wait for termination signal (SIGINT/SIGTERM) to begin graceful shutdown.
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	<-stopCh

	// 9. Graceful shutdown with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	fmt.Println("portal-service stopped")
}
