package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artha/pkg/brands"
)

func TestBuild(t *testing.T) {
	b := brands.Brand{
		Subdomain:    "greenfield",
		Name:         "Greenfield Estates",
		Tagline:      "Build green, invest smart",
		PrimaryColor: "#2E7D32",
	}
	m := Build(b)

	assert.Equal(t, "Greenfield Estates Investor Portal", m.Name)
	assert.Equal(t, "Greenfield Estates", m.ShortName)
	assert.Equal(t, "Build green, invest smart", m.Description)
	assert.Equal(t, "#2E7D32", m.ThemeColor)
	assert.Equal(t, surfaceDark, m.BackgroundColor)
	assert.Equal(t, "/dashboard", m.StartURL)
	assert.Equal(t, "standalone", m.Display)
	assert.Len(t, m.Icons, 2)
	assert.Len(t, m.Shortcuts, 3)
}

func TestBuild_EmptyTaglineGetsDefaultDescription(t *testing.T) {
	m := Build(brands.Brand{Name: "Shiva Estate", PrimaryColor: brands.DefaultPrimaryColor})
	assert.NotEmpty(t, m.Description)
	assert.Equal(t, brands.DefaultPrimaryColor, m.ThemeColor)
}
