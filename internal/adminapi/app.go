package adminapi

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"go.uber.org/zap"

	"artha/internal/ai"
	"artha/internal/portal"
	"artha/pkg/brands"
	"artha/pkg/config"
)

// App is the admin-api application container.
// Handlers and middleware have methods on this type.
//
// Keep it lean: shared deps and config only.
// Request-scoped work should use context.
type App struct {
	log         *zap.SugaredLogger
	db          *pgxpool.Pool
	ai          *ai.Client
	adminJWKS   jwk.Set
	adminIssuer string
	adminAud    string
	demoBuilder string // builder slug used when bearer auth is unconfigured (demo mode)
}

// New constructs App and performs one-time startup tasks (schema, seeds).
// db may be nil in demo mode; write endpoints then answer 503.
func New(log *zap.SugaredLogger, db *pgxpool.Pool, aiClient *ai.Client, cfg config.Config) *App {
	app := &App{
		log:         log,
		db:          db,
		ai:          aiClient,
		adminIssuer: cfg.AdminIssuer,
		adminAud:    cfg.AdminAudience,
		demoBuilder: cfg.DefaultSubdomain,
	}
	if cfg.AdminJWKSURL != "" {
		app.adminJWKS = mustJWKS(cfg.AdminJWKSURL)
	}

	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := brands.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("ensure builder schema: %v", err)
		}
		if err := portal.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("ensure portal schema: %v", err)
		}
		if err := brands.SeedFromEnv(ctx, db, os.Getenv("BUILDER_SEED_JSON")); err != nil {
			log.Warnf("builder seed failed: %v", err)
		}
	}
	return app
}
