// internal/portal/postgres.go
package portal

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pgStore implements Store backed by PostgreSQL. Every query joins through
// builders.subdomain so rows can never leak across builders.
type pgStore struct {
	dbPool *pgxpool.Pool
	log    *zap.SugaredLogger
}

func NewPostgresStore(dbPool *pgxpool.Pool, log *zap.SugaredLogger) Store {
	return &pgStore{dbPool: dbPool, log: log}
}

func (p *pgStore) ResolveInvestor(ctx context.Context, builder, authID string) (Investor, error) {
	if authID == "" {
		return Investor{}, ErrNotFound
	}
	row := p.dbPool.QueryRow(ctx, `
		SELECT i.id, i.name, i.email, COALESCE(i.phone,''), i.is_nri, COALESCE(i.country,'')
		FROM investors i JOIN builders b ON b.id = i.builder_id
		WHERE b.subdomain = $1 AND i.auth_id = $2`, builder, authID)
	var inv Investor
	if err := row.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.Phone, &inv.IsNRI, &inv.Country); err != nil {
		if err == pgx.ErrNoRows {
			return Investor{}, ErrNotFound
		}
		return Investor{}, err
	}
	return inv, nil
}

func (p *pgStore) Dashboard(ctx context.Context, builder, investorID string) (DashboardSummary, error) {
	var s DashboardSummary
	err := p.dbPool.QueryRow(ctx, `
		SELECT COALESCE(SUM(iv.total_agreed_amount),0), COALESCE(SUM(iv.total_paid),0),
		       COALESCE(SUM(iv.pending_amount),0), COUNT(*)
		FROM investments iv
		JOIN investors i ON i.id = iv.investor_id
		JOIN builders b ON b.id = i.builder_id
		WHERE b.subdomain = $1 AND iv.investor_id = $2`, builder, investorID).
		Scan(&s.TotalInvested, &s.TotalPaid, &s.PendingAmount, &s.Investments)
	if err != nil {
		return DashboardSummary{}, err
	}
	err = p.dbPool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT iv.project_id)
		FROM investments iv
		JOIN projects pr ON pr.id = iv.project_id
		WHERE iv.investor_id = $1 AND pr.status NOT IN ('COMPLETED')`, investorID).
		Scan(&s.ActiveProjects)
	if err != nil {
		return DashboardSummary{}, err
	}
	return s, nil
}

const projectColumns = `p.id, p.name, COALESCE(p.description,''), COALESCE(p.location,''), COALESCE(p.city,''),
  COALESCE(p.state,''), COALESCE(p.rera_number,''), COALESCE(p.rera_state,''), p.total_units,
  p.total_project_value, p.total_funding_target, p.funding_raised, p.construction_start,
  p.expected_completion, p.overall_progress, p.status, p.project_type, COALESCE(p.thumbnail_url,'')`

func scanProject(row pgx.Row) (Project, error) {
	var pr Project
	err := row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.Location, &pr.City, &pr.State,
		&pr.RERANumber, &pr.RERAState, &pr.TotalUnits, &pr.TotalProjectValue,
		&pr.TotalFundingTarget, &pr.FundingRaised, &pr.ConstructionStart,
		&pr.ExpectedCompletion, &pr.OverallProgress, &pr.Status, &pr.ProjectType, &pr.ThumbnailURL)
	return pr, err
}

func (p *pgStore) ListProjects(ctx context.Context, builder string) ([]Project, error) {
	rows, err := p.dbPool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects p JOIN builders b ON b.id = p.builder_id
		WHERE b.subdomain = $1
		ORDER BY p.created_at`, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Project
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (p *pgStore) GetProject(ctx context.Context, builder, projectID string) (ProjectDetail, error) {
	row := p.dbPool.QueryRow(ctx, `
		SELECT `+projectColumns+`
		FROM projects p JOIN builders b ON b.id = p.builder_id
		WHERE b.subdomain = $1 AND p.id = $2`, builder, projectID)
	pr, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ProjectDetail{}, ErrNotFound
		}
		return ProjectDetail{}, err
	}
	detail := ProjectDetail{Project: pr, Milestones: []Milestone{}, Updates: []Update{}}

	mrows, err := p.dbPool.Query(ctx, `
		SELECT id, project_id, name, COALESCE(description,''), target_date, actual_date, progress, status, ord
		FROM milestones WHERE project_id = $1 ORDER BY ord`, projectID)
	if err != nil {
		return ProjectDetail{}, err
	}
	defer mrows.Close()
	for mrows.Next() {
		var m Milestone
		if err := mrows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Description, &m.TargetDate,
			&m.ActualDate, &m.Progress, &m.Status, &m.Order); err != nil {
			return ProjectDetail{}, err
		}
		detail.Milestones = append(detail.Milestones, m)
	}

	urows, err := p.dbPool.Query(ctx, `
		SELECT id, project_id, title, body, update_type, photo_urls, ai_generated, published_at
		FROM project_updates WHERE project_id = $1 AND published_at IS NOT NULL
		ORDER BY published_at DESC`, projectID)
	if err != nil {
		return ProjectDetail{}, err
	}
	defer urows.Close()
	for urows.Next() {
		var u Update
		if err := urows.Scan(&u.ID, &u.ProjectID, &u.Title, &u.Body, &u.UpdateType,
			&u.PhotoURLs, &u.AIGenerated, &u.PublishedAt); err != nil {
			return ProjectDetail{}, err
		}
		detail.Updates = append(detail.Updates, u)
	}
	return detail, nil
}

func (p *pgStore) ListInvestments(ctx context.Context, builder, investorID string) ([]Investment, error) {
	rows, err := p.dbPool.Query(ctx, `
		SELECT iv.id, iv.investor_id, iv.project_id, pr.name, COALESCE(iv.unit_label,''),
		       iv.booking_amount, iv.total_agreed_amount, iv.total_paid, iv.pending_amount,
		       iv.predicted_return_pct, COALESCE(iv.predicted_return_range,''), iv.confidence_score,
		       iv.status, iv.possession_date
		FROM investments iv
		JOIN projects pr ON pr.id = iv.project_id
		JOIN investors i ON i.id = iv.investor_id
		JOIN builders b ON b.id = i.builder_id
		WHERE b.subdomain = $1 AND iv.investor_id = $2
		ORDER BY iv.booking_amount DESC`, builder, investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Investment
	for rows.Next() {
		var iv Investment
		if err := rows.Scan(&iv.ID, &iv.InvestorID, &iv.ProjectID, &iv.ProjectName, &iv.UnitLabel,
			&iv.BookingAmount, &iv.TotalAgreedAmount, &iv.TotalPaid, &iv.PendingAmount,
			&iv.PredictedReturnPct, &iv.PredictedReturnRange, &iv.ConfidenceScore,
			&iv.Status, &iv.PossessionDate); err != nil {
			return nil, err
		}
		iv.Payments = []Payment{}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		prows, err := p.dbPool.Query(ctx, `
			SELECT id, investment_id, amount, paid_at, mode, COALESCE(reference_no,'')
			FROM payments WHERE investment_id = $1 ORDER BY paid_at`, out[i].ID)
		if err != nil {
			return nil, err
		}
		for prows.Next() {
			var pay Payment
			if err := prows.Scan(&pay.ID, &pay.InvestmentID, &pay.Amount, &pay.PaidAt, &pay.Mode, &pay.ReferenceNo); err != nil {
				prows.Close()
				return nil, err
			}
			out[i].Payments = append(out[i].Payments, pay)
		}
		prows.Close()
		if err := prows.Err(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *pgStore) ListNotifications(ctx context.Context, builder, investorID string) ([]Notification, error) {
	rows, err := p.dbPool.Query(ctx, `
		SELECT n.id, n.notif_type, n.title, n.body, n.read_at, n.created_at
		FROM notifications n
		JOIN investors i ON i.id = n.investor_id
		JOIN builders b ON b.id = i.builder_id
		WHERE b.subdomain = $1 AND n.investor_id = $2
		ORDER BY n.created_at DESC LIMIT 100`, builder, investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (p *pgStore) ListDocuments(ctx context.Context, builder, investorID string) ([]Document, error) {
	rows, err := p.dbPool.Query(ctx, `
		SELECT d.id, d.investment_id, d.doc_type, d.title, COALESCE(d.file_url,''), d.uploaded_at
		FROM documents d
		JOIN investments iv ON iv.id = d.investment_id
		JOIN investors i ON i.id = iv.investor_id
		JOIN builders b ON b.id = i.builder_id
		WHERE b.subdomain = $1 AND iv.investor_id = $2
		ORDER BY d.uploaded_at DESC`, builder, investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.InvestmentID, &d.Type, &d.Title, &d.FileURL, &d.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
