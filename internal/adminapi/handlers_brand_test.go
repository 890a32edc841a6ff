package adminapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildBrandUpdate(t *testing.T) {
	t.Run("single statement covers all sent fields", func(t *testing.T) {
		show := false
		query, args := buildBrandUpdate(brandUpdate{
			Name:          strPtr("Greenfield Estates"),
			PrimaryColor:  strPtr("#2E7D32"),
			ShowPoweredBy: &show,
		}, "greenfield")

		assert.Equal(t,
			"UPDATE builders SET name=NULLIF($1,''),primary_color=NULLIF($2,''),show_powered_by=$3,updated_at=NOW() WHERE subdomain=$4",
			query)
		require.Len(t, args, 4)
		assert.Equal(t, "Greenfield Estates", args[0])
		assert.Equal(t, "#2E7D32", args[1])
		assert.Equal(t, false, args[2])
		assert.Equal(t, "greenfield", args[3])
	})

	t.Run("empty string clears via NULLIF", func(t *testing.T) {
		query, args := buildBrandUpdate(brandUpdate{Tagline: strPtr("")}, "greenfield")
		assert.Equal(t, "UPDATE builders SET tagline=NULLIF($1,''),updated_at=NOW() WHERE subdomain=$2", query)
		assert.Equal(t, []any{"", "greenfield"}, args)
	})

	t.Run("tier is never writable", func(t *testing.T) {
		query, _ := buildBrandUpdate(brandUpdate{
			Name:          strPtr("X"),
			CustomDomain:  strPtr("invest.x.com"),
			ShowPoweredBy: boolPtr(true),
		}, "x")
		assert.NotContains(t, query, "tier")
	})

	t.Run("no fields means no statement", func(t *testing.T) {
		query, args := buildBrandUpdate(brandUpdate{}, "greenfield")
		assert.Empty(t, query)
		assert.Nil(t, args)
	})
}
