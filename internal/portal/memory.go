// internal/portal/memory.go
package portal

import (
	"context"
	"sort"
	"time"
)

// memStore is the in-memory demo dataset used when no DATABASE_URL is
// configured. It mirrors the seeded Shiva Estate demo: two projects, one NRI
// investor with an active 3BHK investment, and a payment-due alert.
type memStore struct {
	builder       string
	investors     []Investor
	projects      []Project
	milestones    map[string][]Milestone
	updates       map[string][]Update
	investments   []Investment
	notifications map[string][]Notification
	documents     map[string][]Document
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// NewMemoryStore seeds the demo dataset scoped to the given builder subdomain.
func NewMemoryStore(builder string) Store {
	const (
		skylineID = "11111111-1111-4111-8111-111111111111"
		gardensID = "22222222-2222-4222-8222-222222222222"
		priyaID   = "33333333-3333-4333-8333-333333333333"
		rajeshID  = "44444444-4444-4444-8444-444444444444"
		invPriya  = "55555555-5555-4555-8555-555555555555"
		invRajesh = "66666666-6666-4666-8666-666666666666"
	)
	m := &memStore{
		builder: builder,
		investors: []Investor{
			{ID: priyaID, Name: "Priya Nair", Email: "priya.nair@example.com", Phone: "+971 50 123 4567", IsNRI: true, Country: "UAE"},
			{ID: rajeshID, Name: "Rajesh Sharma", Email: "rajesh.sharma@example.com", Phone: "+91 98765 43210"},
		},
		projects: []Project{
			{
				ID: skylineID, Name: "ShivaOS Skyline",
				Description: "A landmark 28-storey luxury residential tower offering 4BHK sky homes with panoramic views of the Kokapet Financial Corridor.",
				Location:    "Kokapet, Outer Ring Road", City: "Hyderabad", State: "Telangana",
				RERANumber: "P02400001234", RERAState: "TS",
				TotalUnits: 280, TotalProjectValue: 480, TotalFundingTarget: 420, FundingRaised: 340,
				ConstructionStart: datePtr(2023, 6, 1), ExpectedCompletion: datePtr(2026, 3, 31),
				OverallProgress: 68, Status: "UNDER_CONSTRUCTION", ProjectType: "RESIDENTIAL",
			},
			{
				ID: gardensID, Name: "ShivaOS Gardens",
				Description: "Low-rise garden residences across 14 acres with 3BHK and villa options.",
				Location:    "Tellapur", City: "Hyderabad", State: "Telangana",
				RERANumber: "P02400005678", RERAState: "TS",
				TotalUnits: 120, TotalProjectValue: 210, TotalFundingTarget: 180, FundingRaised: 174,
				ConstructionStart: datePtr(2022, 2, 15), ExpectedCompletion: datePtr(2025, 6, 30),
				OverallProgress: 91, Status: "NEAR_COMPLETION", ProjectType: "RESIDENTIAL",
			},
		},
		milestones: map[string][]Milestone{
			skylineID: {
				{ID: "ms-1", ProjectID: skylineID, Name: "Foundation & basement", TargetDate: date(2023, 12, 31), ActualDate: datePtr(2023, 12, 12), Progress: 100, Status: "COMPLETED", Order: 1},
				{ID: "ms-2", ProjectID: skylineID, Name: "Structure to floor 14", TargetDate: date(2024, 10, 31), ActualDate: datePtr(2024, 11, 8), Progress: 100, Status: "COMPLETED", Order: 2},
				{ID: "ms-3", ProjectID: skylineID, Name: "Structural topping-out", TargetDate: date(2025, 9, 30), Progress: 78, Status: "IN_PROGRESS", Order: 3},
				{ID: "ms-4", ProjectID: skylineID, Name: "Facade & interiors", TargetDate: date(2026, 1, 31), Progress: 15, Status: "PENDING", Order: 4},
			},
		},
		updates: map[string][]Update{
			skylineID: {
				{
					ID: "up-1", ProjectID: skylineID, Title: "Structure reaches floor 22",
					Body:       "Slab casting for floors 23-24 is underway and MEP rough-ins are progressing through the lower half of the tower.",
					UpdateType: "CONSTRUCTION", PhotoURLs: []string{}, AIGenerated: true, PublishedAt: datePtr(2026, 1, 18),
				},
			},
		},
		investments: []Investment{
			{
				ID: invPriya, InvestorID: priyaID, ProjectID: skylineID, ProjectName: "ShivaOS Skyline",
				UnitLabel: "3BHK A-1204, 2150 sqft", BookingAmount: 1_500_000,
				TotalAgreedAmount: 18_500_000, TotalPaid: 11_100_000, PendingAmount: 7_400_000,
				Status: "UNDER_CONSTRUCTION", PossessionDate: datePtr(2026, 6, 30),
				Payments: []Payment{
					{ID: "pay-1", InvestmentID: invPriya, Amount: 1_500_000, PaidAt: date(2024, 3, 2), Mode: "NEFT", ReferenceNo: "N240302117"},
					{ID: "pay-2", InvestmentID: invPriya, Amount: 4_600_000, PaidAt: date(2024, 9, 15), Mode: "RTGS", ReferenceNo: "R240915553"},
					{ID: "pay-3", InvestmentID: invPriya, Amount: 5_000_000, PaidAt: date(2025, 6, 20), Mode: "NEFT", ReferenceNo: "N250620981"},
				},
			},
			{
				ID: invRajesh, InvestorID: rajeshID, ProjectID: gardensID, ProjectName: "ShivaOS Gardens",
				UnitLabel: "Villa G-07", BookingAmount: 2_000_000,
				TotalAgreedAmount: 32_000_000, TotalPaid: 27_200_000, PendingAmount: 4_800_000,
				Status: "READY_FOR_POSSESSION", PossessionDate: datePtr(2025, 8, 15),
				Payments: []Payment{
					{ID: "pay-4", InvestmentID: invRajesh, Amount: 2_000_000, PaidAt: date(2022, 5, 10), Mode: "Cheque", ReferenceNo: "CHQ-004511"},
					{ID: "pay-5", InvestmentID: invRajesh, Amount: 25_200_000, PaidAt: date(2024, 12, 1), Mode: "RTGS", ReferenceNo: "R241201008"},
				},
			},
		},
		notifications: map[string][]Notification{
			priyaID: {
				{ID: "nt-1", Type: "MILESTONE_REACHED", Title: "Skyline structure reaches floor 22", Body: "ShivaOS Skyline is now 68% complete.", CreatedAt: date(2026, 1, 18)},
				{ID: "nt-2", Type: "AI_INSIGHT", Title: "Updated return prediction available", Body: "Your Skyline 3BHK projection has been refreshed with the latest micro-market rates.", CreatedAt: date(2026, 1, 20)},
			},
			rajeshID: {
				{ID: "nt-3", Type: "PAYMENT_DUE", Title: "Final instalment due", Body: "₹48,00,000 is due before possession handover on 15 Aug 2025.", CreatedAt: date(2025, 7, 1)},
			},
		},
		documents: map[string][]Document{
			priyaID: {
				{ID: "doc-1", InvestmentID: invPriya, Type: "ALLOTMENT_LETTER", Title: "Allotment Letter — A-1204", UploadedAt: date(2024, 3, 5)},
				{ID: "doc-2", InvestmentID: invPriya, Type: "SALE_AGREEMENT", Title: "Agreement of Sale", UploadedAt: date(2024, 4, 22)},
				{ID: "doc-3", InvestmentID: invPriya, Type: "PAYMENT_RECEIPT", Title: "Receipt N250620981", UploadedAt: date(2025, 6, 21)},
			},
			rajeshID: {
				{ID: "doc-4", InvestmentID: invRajesh, Type: "OC_CERTIFICATE", Title: "Occupancy Certificate — Gardens", UploadedAt: date(2025, 6, 30)},
			},
		},
	}
	return m
}

// scoped reports whether a request for the given builder may see the demo
// data. The demo dataset belongs to the default builder only.
func (m *memStore) scoped(builder string) bool { return builder == m.builder }

func (m *memStore) ResolveInvestor(ctx context.Context, builder, authID string) (Investor, error) {
	if !m.scoped(builder) {
		return Investor{}, ErrNotFound
	}
	if authID == "" {
		// Demo mode: everyone browses as the primary demo investor.
		return m.investors[0], nil
	}
	for _, inv := range m.investors {
		if inv.ID == authID {
			return inv, nil
		}
	}
	return Investor{}, ErrNotFound
}

func (m *memStore) Dashboard(ctx context.Context, builder, investorID string) (DashboardSummary, error) {
	var s DashboardSummary
	if !m.scoped(builder) {
		return s, nil
	}
	active := map[string]bool{}
	for _, iv := range m.investments {
		if iv.InvestorID != investorID {
			continue
		}
		s.Investments++
		s.TotalInvested += iv.TotalAgreedAmount
		s.TotalPaid += iv.TotalPaid
		s.PendingAmount += iv.PendingAmount
		for _, pr := range m.projects {
			if pr.ID == iv.ProjectID && pr.Status != "COMPLETED" {
				active[pr.ID] = true
			}
		}
	}
	s.ActiveProjects = len(active)
	return s, nil
}

func (m *memStore) ListProjects(ctx context.Context, builder string) ([]Project, error) {
	if !m.scoped(builder) {
		return []Project{}, nil
	}
	out := make([]Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

func (m *memStore) GetProject(ctx context.Context, builder, projectID string) (ProjectDetail, error) {
	if !m.scoped(builder) {
		return ProjectDetail{}, ErrNotFound
	}
	for _, pr := range m.projects {
		if pr.ID == projectID {
			d := ProjectDetail{Project: pr, Milestones: []Milestone{}, Updates: []Update{}}
			d.Milestones = append(d.Milestones, m.milestones[projectID]...)
			d.Updates = append(d.Updates, m.updates[projectID]...)
			return d, nil
		}
	}
	return ProjectDetail{}, ErrNotFound
}

func (m *memStore) ListInvestments(ctx context.Context, builder, investorID string) ([]Investment, error) {
	if !m.scoped(builder) {
		return []Investment{}, nil
	}
	var out []Investment
	for _, iv := range m.investments {
		if iv.InvestorID == investorID {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingAmount > out[j].BookingAmount })
	return out, nil
}

func (m *memStore) ListNotifications(ctx context.Context, builder, investorID string) ([]Notification, error) {
	if !m.scoped(builder) {
		return []Notification{}, nil
	}
	out := append([]Notification{}, m.notifications[investorID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListDocuments(ctx context.Context, builder, investorID string) ([]Document, error) {
	if !m.scoped(builder) {
		return []Document{}, nil
	}
	return append([]Document{}, m.documents[investorID]...), nil
}
