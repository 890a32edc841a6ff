// internal/manifest/service.go
package manifest

import (
	"artha/pkg/brands"
)

type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

type Shortcut struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Manifest is the web-app manifest served per builder. It is a thin read-only
// projection of the resolved brand.
type Manifest struct {
	Name            string     `json:"name"`
	ShortName       string     `json:"short_name"`
	Description     string     `json:"description"`
	StartURL        string     `json:"start_url"`
	Display         string     `json:"display"`
	Orientation     string     `json:"orientation"`
	BackgroundColor string     `json:"background_color"`
	ThemeColor      string     `json:"theme_color"`
	Categories      []string   `json:"categories"`
	Lang            string     `json:"lang"`
	Icons           []Icon     `json:"icons"`
	Shortcuts       []Shortcut `json:"shortcuts"`
}

const surfaceDark = "#0F0F1A"

// Build assembles the manifest for a resolved brand. Theme colour follows the
// builder's primary colour; everything else is fixed app chrome.
func Build(b brands.Brand) Manifest {
	desc := b.Tagline
	if desc == "" {
		desc = "Track your investment. Monitor construction. Predict your returns."
	}
	return Manifest{
		Name:            b.Name + " Investor Portal",
		ShortName:       b.Name,
		Description:     desc,
		StartURL:        "/dashboard",
		Display:         "standalone",
		Orientation:     "portrait-primary",
		BackgroundColor: surfaceDark,
		ThemeColor:      b.PrimaryColor,
		Categories:      []string{"finance", "business"},
		Lang:            "en",
		Icons: []Icon{
			{Src: "/icons/icon-192.png", Sizes: "192x192", Type: "image/png", Purpose: "any maskable"},
			{Src: "/icons/icon-512.png", Sizes: "512x512", Type: "image/png", Purpose: "any maskable"},
		},
		Shortcuts: []Shortcut{
			{Name: "Dashboard", ShortName: "Home", URL: "/dashboard", Description: "View your investment dashboard"},
			{Name: "Projects", ShortName: "Projects", URL: "/projects", Description: "Browse all projects"},
			{Name: "AI Returns", ShortName: "Returns", URL: "/returns", Description: "AI-powered return analysis"},
		},
	}
}
