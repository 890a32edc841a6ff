// pkg/brands/postgres.go
package brands

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pgStore implements Store backed by PostgreSQL.
type pgStore struct {
	dbPool *pgxpool.Pool
	log    *zap.SugaredLogger
}

// NewPostgresStore constructs a PostgreSQL-backed brand store.
func NewPostgresStore(dbPool *pgxpool.Pool, log *zap.SugaredLogger) Store {
	return &pgStore{dbPool: dbPool, log: log}
}

// EnsureSchema creates the builder tables if they do not already exist.
// Safe to call repeatedly (idempotent).
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	_, err := dbPool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS builders (
  id uuid PRIMARY KEY,
  subdomain text UNIQUE NOT NULL,
  name text NOT NULL,
  tagline text,
  logo_url text,
  favicon_url text,
  primary_color text,
  accent_color text,
  contact_email text,
  contact_phone text,
  rera_id text,
  tier text NOT NULL DEFAULT 'STARTER',
  show_powered_by boolean NOT NULL DEFAULT true,
  custom_domain text UNIQUE,
  created_at timestamptz NOT NULL DEFAULT NOW(),
  updated_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS builder_users (
  id uuid PRIMARY KEY,
  builder_id uuid NOT NULL REFERENCES builders(id) ON DELETE CASCADE,
  email text NOT NULL,
  name text,
  role text NOT NULL DEFAULT 'VIEWER',
  auth_id text UNIQUE,
  created_at timestamptz NOT NULL DEFAULT NOW(),
  UNIQUE(builder_id, email)
);
-- Backfill / ensure newer columns exist (for upgrades)
ALTER TABLE builders ADD COLUMN IF NOT EXISTS favicon_url text;
ALTER TABLE builders ADD COLUMN IF NOT EXISTS rera_id text;
ALTER TABLE builders ADD COLUMN IF NOT EXISTS tier text DEFAULT 'STARTER';
ALTER TABLE builders ADD COLUMN IF NOT EXISTS show_powered_by boolean DEFAULT true;
ALTER TABLE builders ADD COLUMN IF NOT EXISTS custom_domain text;
CREATE UNIQUE INDEX IF NOT EXISTS builders_custom_domain_idx ON builders(custom_domain) WHERE custom_domain IS NOT NULL;
`)
	return err
}

// SeedFromEnv ingests initial builder data (BUILDER_SEED_JSON):
// [{"subdomain":"shivaos","name":"Shiva Estate","primary_color":"#C9A84C",...}]
func SeedFromEnv(ctx context.Context, dbPool *pgxpool.Pool, jsonSeed string) error {
	if jsonSeed == "" {
		return nil
	}
	var entries []struct {
		Subdomain     string `json:"subdomain"`
		Name          string `json:"name"`
		Tagline       string `json:"tagline"`
		LogoURL       string `json:"logo_url"`
		PrimaryColor  string `json:"primary_color"`
		AccentColor   string `json:"accent_color"`
		ContactEmail  string `json:"contact_email"`
		ContactPhone  string `json:"contact_phone"`
		RERAID        string `json:"rera_id"`
		Tier          string `json:"tier"`
		ShowPoweredBy *bool  `json:"show_powered_by"`
		CustomDomain  string `json:"custom_domain"`
	}
	if err := json.Unmarshal([]byte(jsonSeed), &entries); err != nil {
		return err
	}
	for _, e := range entries {
		show := true
		if e.ShowPoweredBy != nil {
			show = *e.ShowPoweredBy
		}
		_, err := dbPool.Exec(ctx, `INSERT INTO builders(id,subdomain,name,tagline,logo_url,primary_color,accent_color,contact_email,contact_phone,rera_id,tier,show_powered_by,custom_domain)
		  VALUES ($1,$2,$3,NULLIF($4,''),NULLIF($5,''),NULLIF($6,''),NULLIF($7,''),NULLIF($8,''),NULLIF($9,''),NULLIF($10,''),$11,$12,NULLIF($13,''))
		  ON CONFLICT (subdomain) DO UPDATE SET name=EXCLUDED.name,tagline=EXCLUDED.tagline,logo_url=EXCLUDED.logo_url,
		    primary_color=EXCLUDED.primary_color,accent_color=EXCLUDED.accent_color,contact_email=EXCLUDED.contact_email,
		    contact_phone=EXCLUDED.contact_phone,rera_id=EXCLUDED.rera_id,tier=EXCLUDED.tier,
		    show_powered_by=EXCLUDED.show_powered_by,custom_domain=EXCLUDED.custom_domain,updated_at=NOW()`,
			uuid.New(), e.Subdomain, e.Name, e.Tagline, e.LogoURL, e.PrimaryColor, e.AccentColor,
			e.ContactEmail, e.ContactPhone, e.RERAID, string(ParseTier(e.Tier)), show, e.CustomDomain)
		if err != nil {
			return err
		}
	}
	return nil
}

const brandColumns = `subdomain,name,COALESCE(tagline,''),COALESCE(logo_url,''),COALESCE(favicon_url,''),
  COALESCE(primary_color,''),COALESCE(accent_color,''),COALESCE(contact_email,''),COALESCE(contact_phone,''),
  COALESCE(rera_id,''),COALESCE(tier,'STARTER'),COALESCE(show_powered_by,true),COALESCE(custom_domain,'')`

// Lookup resolves a brand by subdomain, then (for dotted keys) by custom
// domain. Custom domains only route content for ENTERPRISE builders; for lower
// tiers the stored value is display-only and never matched here.
func (p *pgStore) Lookup(ctx context.Context, key string) Lookup {
	row := p.dbPool.QueryRow(ctx, `SELECT `+brandColumns+` FROM builders WHERE subdomain=$1`, key)
	b, err := scanBrand(row)
	if err == nil {
		return Found(b)
	}
	if err != pgx.ErrNoRows {
		return Unreachable(err)
	}
	if strings.Contains(key, ".") {
		row = p.dbPool.QueryRow(ctx, `SELECT `+brandColumns+` FROM builders WHERE custom_domain=$1 AND tier='ENTERPRISE'`, key)
		b, err = scanBrand(row)
		if err == nil {
			return Found(b)
		}
		if err != pgx.ErrNoRows {
			return Unreachable(err)
		}
	}
	return NotFound()
}

func scanBrand(row pgx.Row) (Brand, error) {
	var b Brand
	var tier string
	if err := row.Scan(&b.Subdomain, &b.Name, &b.Tagline, &b.LogoURL, &b.FaviconURL,
		&b.PrimaryColor, &b.AccentColor, &b.ContactEmail, &b.ContactPhone,
		&b.RERAID, &tier, &b.ShowPoweredBy, &b.CustomDomain); err != nil {
		return Brand{}, err
	}
	b.Tier = ParseTier(tier)
	return b, nil
}
