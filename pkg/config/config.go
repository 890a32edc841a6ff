// pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	HTTPAddr  string // portal-service
	AdminAddr string // admin-api-service

	// Multi-tenant hostname resolution
	RootDomain       string // platform root (subdomains of this resolve to builder slugs)
	PreviewSuffix    string // PaaS preview deployments always resolve to the default builder
	DefaultSubdomain string

	// Identity provider (GoTrue-compatible). Both empty -> demo mode, no auth enforced.
	AuthURL      string
	AuthAnonKey  string
	AuthJWKSURL  string
	AuthFailOpen bool // verifier unreachable: allow through instead of redirecting to login
	LoginPath    string

	// Admin API bearer auth
	AdminIssuer   string
	AdminAudience string
	AdminJWKSURL  string

	// AI text generation
	AnthropicAPIKey string
	AnthropicModel  string

	// Brand resolution
	BrandDefaultsFile string        // optional YAML override for the fallback brand
	BrandCacheTTL     time.Duration // redis cache TTL, matches manifest cache lifetime
	BrandLookupTO     time.Duration // per-lookup timeout before falling back to defaults

	// Redis & Postgres
	RedisURL    string
	DatabaseURL string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:               env("ARTHA_ENV", "dev"),
		HTTPAddr:          env("ARTHA_HTTP_ADDR", ":8080"),
		AdminAddr:         env("ARTHA_ADMIN_ADDR", ":8082"),
		RootDomain:        env("ARTHA_ROOT_DOMAIN", "artha.io"),
		PreviewSuffix:     env("ARTHA_PREVIEW_SUFFIX", ".vercel.app"),
		DefaultSubdomain:  env("ARTHA_DEFAULT_SUBDOMAIN", "shivaos"),
		AuthURL:           env("AUTH_URL", ""),
		AuthAnonKey:       env("AUTH_ANON_KEY", ""),
		AuthJWKSURL:       env("AUTH_JWKS_URL", ""),
		AuthFailOpen:      envBool("AUTH_FAIL_OPEN", false),
		LoginPath:         env("AUTH_LOGIN_PATH", "/login"),
		AdminIssuer:       env("ADMIN_OIDC_ISSUER", ""),
		AdminAudience:     env("ADMIN_OIDC_AUDIENCE", "artha-admin"),
		AdminJWKSURL:      env("ADMIN_JWKS_URL", ""),
		AnthropicAPIKey:   env("ANTHROPIC_API_KEY", ""),
		AnthropicModel:    env("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		BrandDefaultsFile: env("BRAND_DEFAULTS_FILE", ""),
		BrandCacheTTL:     envDur("BRAND_CACHE_TTL_SEC", 3600) * time.Second,
		BrandLookupTO:     envDur("BRAND_LOOKUP_TIMEOUT_SEC", 2) * time.Second,
		RedisURL:          env("REDIS_URL", ""),
		DatabaseURL:       env("DATABASE_URL", ""),
	}
	if cfg.DatabaseURL == "" {
		log.Println("[WARN] DATABASE_URL not set, using in-memory demo data")
	}
	if cfg.DemoAuth() {
		log.Println("[WARN] AUTH_URL/AUTH_ANON_KEY not set, running unauthenticated (demo mode)")
	}
	return cfg
}

// DemoAuth reports whether the identity provider is unconfigured and every
// request should pass through without a session check.
func (c Config) DemoAuth() bool { return c.AuthURL == "" || c.AuthAnonKey == "" }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		b, _ := strconv.ParseBool(v)
		return b
	}
	return def
}
func envDur(k string, def int) time.Duration {
	if v := os.Getenv(k); v != "" {
		i, _ := strconv.Atoi(v)
		return time.Duration(i)
	}
	return time.Duration(def)
}
