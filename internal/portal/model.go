// internal/portal/model.go
package portal

import "time"

// Amounts follow the seed data's conventions: project-level figures in crores,
// investment-level figures in rupees.

type Project struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Location           string     `json:"location"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	RERANumber         string     `json:"rera_number,omitempty"`
	RERAState          string     `json:"rera_state,omitempty"`
	TotalUnits         int        `json:"total_units"`
	TotalProjectValue  float64    `json:"total_project_value"`
	TotalFundingTarget float64    `json:"total_funding_target"`
	FundingRaised      float64    `json:"funding_raised"`
	ConstructionStart  *time.Time `json:"construction_start,omitempty"`
	ExpectedCompletion *time.Time `json:"expected_completion,omitempty"`
	OverallProgress    int        `json:"overall_progress"`
	Status             string     `json:"status"`
	ProjectType        string     `json:"project_type"`
	ThumbnailURL       string     `json:"thumbnail_url,omitempty"`
}

type Milestone struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	TargetDate  time.Time  `json:"target_date"`
	ActualDate  *time.Time `json:"actual_date,omitempty"`
	Progress    int        `json:"progress"`
	Status      string     `json:"status"`
	Order       int        `json:"order"`
}

type Update struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	UpdateType  string     `json:"update_type"`
	PhotoURLs   []string   `json:"photo_urls"`
	AIGenerated bool       `json:"ai_generated"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ProjectDetail is a project with its timeline, served on the detail page.
type ProjectDetail struct {
	Project
	Milestones []Milestone `json:"milestones"`
	Updates    []Update    `json:"updates"`
}

type Investor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	IsNRI   bool   `json:"is_nri"`
	Country string `json:"country,omitempty"`
}

type Payment struct {
	ID           string    `json:"id"`
	InvestmentID string    `json:"investment_id"`
	Amount       float64   `json:"amount"`
	PaidAt       time.Time `json:"paid_at"`
	Mode         string    `json:"mode"`
	ReferenceNo  string    `json:"reference_no,omitempty"`
}

type Investment struct {
	ID                   string     `json:"id"`
	InvestorID           string     `json:"investor_id"`
	ProjectID            string     `json:"project_id"`
	ProjectName          string     `json:"project_name"`
	UnitLabel            string     `json:"unit_label,omitempty"`
	BookingAmount        float64    `json:"booking_amount"`
	TotalAgreedAmount    float64    `json:"total_agreed_amount"`
	TotalPaid            float64    `json:"total_paid"`
	PendingAmount        float64    `json:"pending_amount"`
	PredictedReturnPct   *float64   `json:"predicted_return_pct,omitempty"`
	PredictedReturnRange string     `json:"predicted_return_range,omitempty"`
	ConfidenceScore      *float64   `json:"confidence_score,omitempty"`
	Status               string     `json:"status"`
	PossessionDate       *time.Time `json:"possession_date,omitempty"`
	Payments             []Payment  `json:"payments"`
}

type Notification struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Document struct {
	ID           string    `json:"id"`
	InvestmentID string    `json:"investment_id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	FileURL      string    `json:"file_url,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// DashboardSummary aggregates an investor's position across a builder's
// projects.
type DashboardSummary struct {
	TotalInvested  float64    `json:"total_invested"`
	TotalPaid      float64    `json:"total_paid"`
	PendingAmount  float64    `json:"pending_amount"`
	ActiveProjects int        `json:"active_projects"`
	NextPaymentDue *time.Time `json:"next_payment_due,omitempty"`
	Investments    int        `json:"investments"`
}
