package brands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMemoryStore_Lookup(t *testing.T) {
	t.Setenv("BRAND_SEED_JSON", `[
	  {"subdomain":"greenfield","name":"Greenfield Estates","tier":"GROWTH","custom_domain":"invest.greenfield.in"},
	  {"subdomain":"titanbuild","name":"Titan Build","tier":"ENTERPRISE","custom_domain":"portal.titanbuild.com"}
	]`)
	store := NewMemoryStoreFromEnv(DemoBrand(), zap.NewNop().Sugar())
	ctx := context.Background()

	t.Run("default brand resolvable by subdomain", func(t *testing.T) {
		res := store.Lookup(ctx, "shivaos")
		assert.Equal(t, OutcomeFound, res.Outcome)
		assert.Equal(t, "Shiva Estate", res.Brand.Name)
	})

	t.Run("seeded builder by subdomain", func(t *testing.T) {
		res := store.Lookup(ctx, "greenfield")
		assert.Equal(t, OutcomeFound, res.Outcome)
		assert.Equal(t, TierGrowth, res.Brand.Tier)
	})

	t.Run("enterprise custom domain routes", func(t *testing.T) {
		res := store.Lookup(ctx, "portal.titanbuild.com")
		assert.Equal(t, OutcomeFound, res.Outcome)
		assert.Equal(t, "titanbuild", res.Brand.Subdomain)
	})

	t.Run("sub-enterprise custom domain is display only", func(t *testing.T) {
		res := store.Lookup(ctx, "invest.greenfield.in")
		assert.Equal(t, OutcomeNotFound, res.Outcome)
	})

	t.Run("unknown key misses", func(t *testing.T) {
		res := store.Lookup(ctx, "nobody")
		assert.Equal(t, OutcomeNotFound, res.Outcome)
	})
}

// Seed entries that omit show_powered_by default to true; only an explicit
// false hides the badge.
func TestMemoryStore_SeedShowPoweredByDefault(t *testing.T) {
	t.Setenv("BRAND_SEED_JSON", `[
	  {"subdomain":"greenfield","name":"Greenfield Estates","tier":"GROWTH"},
	  {"subdomain":"titanbuild","name":"Titan Build","tier":"GROWTH","show_powered_by":false}
	]`)
	store := NewMemoryStoreFromEnv(DemoBrand(), zap.NewNop().Sugar())
	ctx := context.Background()

	omitted := store.Lookup(ctx, "greenfield")
	assert.Equal(t, OutcomeFound, omitted.Outcome)
	assert.True(t, omitted.Brand.ShowPoweredBy)
	assert.True(t, omitted.Brand.EffectiveShowPoweredBy())

	explicit := store.Lookup(ctx, "titanbuild")
	assert.Equal(t, OutcomeFound, explicit.Outcome)
	assert.False(t, explicit.Brand.ShowPoweredBy)
	assert.False(t, explicit.Brand.EffectiveShowPoweredBy())
}

func TestLoadDefaultBrand_MissingFileKeepsBuiltin(t *testing.T) {
	b := LoadDefaultBrand("/nonexistent/brand.yaml")
	assert.Equal(t, DemoBrand(), b)
}
