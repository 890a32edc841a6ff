// pkg/brands/model.go
package brands

import "strings"

// Tier is the builder subscription level. It gates which branding features a
// builder may actually use versus merely store.
type Tier string

const (
	TierStarter    Tier = "STARTER"
	TierGrowth     Tier = "GROWTH"
	TierEnterprise Tier = "ENTERPRISE"
)

// ParseTier maps a stored tier value onto a known Tier, defaulting to STARTER.
func ParseTier(s string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierGrowth:
		return TierGrowth
	case TierEnterprise:
		return TierEnterprise
	default:
		return TierStarter
	}
}

// Brand is the white-label configuration for one builder (tenant).
// Field defaults are applied once at the store boundary, so consumers never
// null-coalesce.
type Brand struct {
	Subdomain     string `json:"subdomain"`
	Name          string `json:"name"`
	Tagline       string `json:"tagline,omitempty"`
	LogoURL       string `json:"logo_url,omitempty"`
	FaviconURL    string `json:"favicon_url,omitempty"`
	PrimaryColor  string `json:"primary_color"`
	AccentColor   string `json:"accent_color"`
	ContactEmail  string `json:"contact_email,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	RERAID        string `json:"rera_id,omitempty"`
	Tier          Tier   `json:"tier"`
	ShowPoweredBy bool   `json:"show_powered_by"`
	CustomDomain  string `json:"custom_domain,omitempty"`
}

// Platform default colours (Shiva Estate gold / navy).
const (
	DefaultPrimaryColor = "#C9A84C"
	DefaultAccentColor  = "#1A1A2E"
)

// EffectiveShowPoweredBy applies the attribution-badge tier gate: STARTER always
// shows the badge regardless of the stored preference.
func (b Brand) EffectiveShowPoweredBy() bool {
	if b.Tier == TierStarter {
		return true
	}
	return b.ShowPoweredBy
}

// CustomDomainActive reports whether the stored custom domain may actually serve
// builder content. Below ENTERPRISE the field is display-only.
func (b Brand) CustomDomainActive() bool {
	return b.Tier == TierEnterprise && b.CustomDomain != ""
}

// withDefaults fills zero-valued display fields so downstream consumers get a
// structurally complete brand.
func (b Brand) withDefaults() Brand {
	if b.PrimaryColor == "" {
		b.PrimaryColor = DefaultPrimaryColor
	}
	if b.AccentColor == "" {
		b.AccentColor = DefaultAccentColor
	}
	if b.Tier == "" {
		b.Tier = TierStarter
	}
	return b
}
