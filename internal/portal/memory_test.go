package portal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_BuilderScoping(t *testing.T) {
	store := NewMemoryStore("shivaos")
	ctx := context.Background()

	// Data is visible only under the seeded builder.
	projects, err := store.ListProjects(ctx, "shivaos")
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	other, err := store.ListProjects(ctx, "greenfield")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = store.ResolveInvestor(ctx, "greenfield", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ResolveInvestor(t *testing.T) {
	store := NewMemoryStore("shivaos")
	ctx := context.Background()

	t.Run("empty auth id returns demo investor", func(t *testing.T) {
		inv, err := store.ResolveInvestor(ctx, "shivaos", "")
		require.NoError(t, err)
		assert.Equal(t, "Priya Nair", inv.Name)
		assert.True(t, inv.IsNRI)
	})

	t.Run("unknown auth id misses", func(t *testing.T) {
		_, err := store.ResolveInvestor(ctx, "shivaos", "no-such-user")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore_Dashboard(t *testing.T) {
	store := NewMemoryStore("shivaos")
	ctx := context.Background()

	inv, err := store.ResolveInvestor(ctx, "shivaos", "")
	require.NoError(t, err)

	s, err := store.Dashboard(ctx, "shivaos", inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Investments)
	assert.Equal(t, 1, s.ActiveProjects)
	assert.Equal(t, 18_500_000.0, s.TotalInvested)
	assert.Equal(t, 11_100_000.0, s.TotalPaid)
	assert.Equal(t, 7_400_000.0, s.PendingAmount)
}

func TestMemoryStore_GetProject(t *testing.T) {
	store := NewMemoryStore("shivaos")
	ctx := context.Background()

	projects, err := store.ListProjects(ctx, "shivaos")
	require.NoError(t, err)
	require.NotEmpty(t, projects)

	detail, err := store.GetProject(ctx, "shivaos", projects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, projects[0].Name, detail.Name)
	assert.NotEmpty(t, detail.Milestones)
	assert.NotEmpty(t, detail.Updates)

	_, err = store.GetProject(ctx, "shivaos", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_InvestmentsAndExtras(t *testing.T) {
	store := NewMemoryStore("shivaos")
	ctx := context.Background()

	inv, err := store.ResolveInvestor(ctx, "shivaos", "")
	require.NoError(t, err)

	investments, err := store.ListInvestments(ctx, "shivaos", inv.ID)
	require.NoError(t, err)
	require.Len(t, investments, 1)
	assert.Len(t, investments[0].Payments, 3)
	assert.Equal(t, investments[0].TotalAgreedAmount, investments[0].TotalPaid+investments[0].PendingAmount)

	notes, err := store.ListNotifications(ctx, "shivaos", inv.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	// Newest first.
	assert.True(t, !notes[0].CreatedAt.Before(notes[1].CreatedAt))

	docs, err := store.ListDocuments(ctx, "shivaos", inv.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}
