// internal/portal/schema.go
package portal

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the portal tables if they do not already exist.
// Safe to call repeatedly (idempotent). The builders table itself is owned by
// pkg/brands.
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	_, err := dbPool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS projects (
  id uuid PRIMARY KEY,
  builder_id uuid NOT NULL REFERENCES builders(id) ON DELETE CASCADE,
  name text NOT NULL,
  description text,
  location text,
  city text,
  state text,
  rera_number text,
  rera_state text,
  total_units int NOT NULL DEFAULT 0,
  total_project_value numeric NOT NULL DEFAULT 0,
  total_funding_target numeric NOT NULL DEFAULT 0,
  funding_raised numeric NOT NULL DEFAULT 0,
  construction_start timestamptz,
  expected_completion timestamptz,
  overall_progress int NOT NULL DEFAULT 0,
  status text NOT NULL DEFAULT 'UPCOMING',
  project_type text NOT NULL DEFAULT 'RESIDENTIAL',
  thumbnail_url text,
  created_at timestamptz NOT NULL DEFAULT NOW(),
  updated_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS milestones (
  id uuid PRIMARY KEY,
  project_id uuid NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  name text NOT NULL,
  description text,
  target_date timestamptz NOT NULL,
  actual_date timestamptz,
  progress int NOT NULL DEFAULT 0,
  status text NOT NULL DEFAULT 'PENDING',
  ord int NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS project_updates (
  id uuid PRIMARY KEY,
  project_id uuid NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  title text NOT NULL,
  body text NOT NULL,
  update_type text NOT NULL DEFAULT 'CONSTRUCTION',
  photo_urls text[] NOT NULL DEFAULT '{}',
  ai_generated boolean NOT NULL DEFAULT false,
  published_at timestamptz
);
CREATE TABLE IF NOT EXISTS investors (
  id uuid PRIMARY KEY,
  builder_id uuid NOT NULL REFERENCES builders(id) ON DELETE CASCADE,
  name text NOT NULL,
  email text NOT NULL,
  phone text,
  is_nri boolean NOT NULL DEFAULT false,
  country text,
  auth_id text UNIQUE,
  UNIQUE(builder_id, email)
);
CREATE TABLE IF NOT EXISTS investments (
  id uuid PRIMARY KEY,
  investor_id uuid NOT NULL REFERENCES investors(id) ON DELETE CASCADE,
  project_id uuid NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  unit_label text,
  booking_amount numeric NOT NULL DEFAULT 0,
  total_agreed_amount numeric NOT NULL DEFAULT 0,
  total_paid numeric NOT NULL DEFAULT 0,
  pending_amount numeric NOT NULL DEFAULT 0,
  predicted_return_pct numeric,
  predicted_return_range text,
  confidence_score numeric,
  status text NOT NULL DEFAULT 'BOOKED',
  possession_date timestamptz
);
CREATE TABLE IF NOT EXISTS payments (
  id uuid PRIMARY KEY,
  investment_id uuid NOT NULL REFERENCES investments(id) ON DELETE CASCADE,
  amount numeric NOT NULL,
  paid_at timestamptz NOT NULL,
  mode text NOT NULL DEFAULT 'NEFT',
  reference_no text
);
CREATE TABLE IF NOT EXISTS documents (
  id uuid PRIMARY KEY,
  investment_id uuid NOT NULL REFERENCES investments(id) ON DELETE CASCADE,
  doc_type text NOT NULL DEFAULT 'OTHER',
  title text NOT NULL,
  file_url text,
  uploaded_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS notifications (
  id uuid PRIMARY KEY,
  investor_id uuid NOT NULL REFERENCES investors(id) ON DELETE CASCADE,
  notif_type text NOT NULL DEFAULT 'UPDATE',
  title text NOT NULL,
  body text NOT NULL,
  read_at timestamptz,
  created_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS projects_builder_idx ON projects(builder_id);
CREATE INDEX IF NOT EXISTS investments_investor_idx ON investments(investor_id);
CREATE INDEX IF NOT EXISTS payments_investment_idx ON payments(investment_id);
CREATE INDEX IF NOT EXISTS notifications_investor_idx ON notifications(investor_id, created_at DESC);
`)
	return err
}
