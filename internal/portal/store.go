// internal/portal/store.go
package portal

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("portal: not found")

// Store is the builder-scoped read surface backing the investor portal.
// Every method takes the builder subdomain resolved from the request hostname;
// implementations must never return data belonging to another builder.
type Store interface {
	// ResolveInvestor maps an identity-provider user to the builder's investor
	// record. An empty authID is only meaningful in demo mode, where the
	// demo investor is returned.
	ResolveInvestor(ctx context.Context, builder, authID string) (Investor, error)

	Dashboard(ctx context.Context, builder, investorID string) (DashboardSummary, error)
	ListProjects(ctx context.Context, builder string) ([]Project, error)
	GetProject(ctx context.Context, builder, projectID string) (ProjectDetail, error)
	ListInvestments(ctx context.Context, builder, investorID string) ([]Investment, error)
	ListNotifications(ctx context.Context, builder, investorID string) ([]Notification, error)
	ListDocuments(ctx context.Context, builder, investorID string) ([]Document, error)
}
