// internal/rera/client.go
package rera

import (
	"context"
	"time"
)

// Status is the regulatory compliance snapshot for one registered project.
type Status struct {
	IsRegistered       bool     `json:"is_registered"`
	LastUpdated        string   `json:"last_updated"`
	ComplianceScore    int      `json:"compliance_score"`
	PendingFilings     []string `json:"pending_filings"`
	ProjectStatus      string   `json:"project_status"`
	RERAProjectName    string   `json:"rera_project_name"`
	PromoterName       string   `json:"promoter_name"`
	ExpectedCompletion string   `json:"expected_completion"`
}

// Client answers RERA registry lookups by registration number.
type Client interface {
	CheckCompliance(ctx context.Context, reraNumber, state string) (Status, error)
}

// mockClient serves canned registry data. In production this is replaced with
// a real registry API client behind the same interface.
type mockClient struct {
	data map[string]Status
}

func NewMockClient() Client {
	return &mockClient{data: map[string]Status{
		"P02400001234": {
			IsRegistered: true, LastUpdated: "2026-01-15", ComplianceScore: 94,
			PendingFilings: []string{}, ProjectStatus: "Under Construction",
			RERAProjectName: "ShivaOS Skyline", PromoterName: "ShivaOS Realty Pvt Ltd",
			ExpectedCompletion: "2026-03-31",
		},
		"P02400005678": {
			IsRegistered: true, LastUpdated: "2026-01-20", ComplianceScore: 97,
			PendingFilings: []string{"Q4 2025 progress report (due 15 Jan 2026)"},
			ProjectStatus:  "Near Completion",
			RERAProjectName: "ShivaOS Gardens", PromoterName: "ShivaOS Realty Pvt Ltd",
			ExpectedCompletion: "2025-06-30",
		},
		"P02400009999": {
			IsRegistered: true, LastUpdated: "2026-02-01", ComplianceScore: 100,
			PendingFilings: []string{}, ProjectStatus: "Registered",
			RERAProjectName: "ShivaOS Horizon", PromoterName: "ShivaOS Realty Pvt Ltd",
			ExpectedCompletion: "2028-12-31",
		},
	}}
}

func (m *mockClient) CheckCompliance(ctx context.Context, reraNumber, _ string) (Status, error) {
	if s, ok := m.data[reraNumber]; ok {
		return s, nil
	}
	return Status{
		IsRegistered:       false,
		LastUpdated:        time.Now().Format("2006-01-02"),
		ComplianceScore:    0,
		PendingFilings:     []string{"Registration not found"},
		ProjectStatus:      "Unknown",
		RERAProjectName:    "Unknown",
		PromoterName:       "Unknown",
		ExpectedCompletion: "Unknown",
	}, nil
}
