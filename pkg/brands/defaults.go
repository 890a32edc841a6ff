// pkg/brands/defaults.go
package brands

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DemoBrand is the Shiva Estate fallback served when no builder record
// resolves, so demo deployments render fully branded without a database.
func DemoBrand() Brand {
	return Brand{
		Subdomain:     "shivaos",
		Name:          "Shiva Estate",
		Tagline:       "Shiva Buildcon · Shiva Investments",
		PrimaryColor:  DefaultPrimaryColor,
		AccentColor:   DefaultAccentColor,
		ContactEmail:  "invest@shivaestate.com",
		ContactPhone:  "+91 755 4567 8900",
		RERAID:        "A01600000001",
		Tier:          TierStarter,
		ShowPoweredBy: true,
	}
}

// LoadDefaultBrand returns the fallback brand, optionally overridden from a
// YAML file so operators can rebrand the demo without a rebuild. Any read or
// parse failure keeps the built-in default; the fallback path never errors.
func LoadDefaultBrand(path string) Brand {
	base := DemoBrand()
	if path == "" {
		return base
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return base
	}
	var over struct {
		Subdomain     string `yaml:"subdomain"`
		Name          string `yaml:"name"`
		Tagline       string `yaml:"tagline"`
		LogoURL       string `yaml:"logo_url"`
		FaviconURL    string `yaml:"favicon_url"`
		PrimaryColor  string `yaml:"primary_color"`
		AccentColor   string `yaml:"accent_color"`
		ContactEmail  string `yaml:"contact_email"`
		ContactPhone  string `yaml:"contact_phone"`
		RERAID        string `yaml:"rera_id"`
		Tier          string `yaml:"tier"`
		ShowPoweredBy *bool  `yaml:"show_powered_by"`
	}
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return base
	}
	if over.Subdomain != "" {
		base.Subdomain = over.Subdomain
	}
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Tagline != "" {
		base.Tagline = over.Tagline
	}
	if over.LogoURL != "" {
		base.LogoURL = over.LogoURL
	}
	if over.FaviconURL != "" {
		base.FaviconURL = over.FaviconURL
	}
	if over.PrimaryColor != "" {
		base.PrimaryColor = over.PrimaryColor
	}
	if over.AccentColor != "" {
		base.AccentColor = over.AccentColor
	}
	if over.ContactEmail != "" {
		base.ContactEmail = over.ContactEmail
	}
	if over.ContactPhone != "" {
		base.ContactPhone = over.ContactPhone
	}
	if over.RERAID != "" {
		base.RERAID = over.RERAID
	}
	if over.Tier != "" {
		base.Tier = ParseTier(over.Tier)
	}
	if over.ShowPoweredBy != nil {
		base.ShowPoweredBy = *over.ShowPoweredBy
	}
	return base
}
