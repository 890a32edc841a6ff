package adminapi

import (
	"fmt"
	"net/http"
	"strings"

	"artha/pkg/brands"
)

// brandUpdate carries the editable white-label fields. Pointers distinguish
// "leave alone" from "clear".
type brandUpdate struct {
	Name          *string `json:"name"`
	Tagline       *string `json:"tagline"`
	LogoURL       *string `json:"logo_url"`
	FaviconURL    *string `json:"favicon_url"`
	PrimaryColor  *string `json:"primary_color"`
	AccentColor   *string `json:"accent_color"`
	ContactEmail  *string `json:"contact_email"`
	ContactPhone  *string `json:"contact_phone"`
	RERAID        *string `json:"rera_id"`
	ShowPoweredBy *bool   `json:"show_powered_by"`
	CustomDomain  *string `json:"custom_domain"`
}

func (a *App) getBrand(w http.ResponseWriter, r *http.Request) {
	slug := builderFrom(r.Context())
	lk := brands.NewPostgresStore(a.db, a.log).Lookup(r.Context(), slug)
	switch lk.Outcome {
	case brands.OutcomeFound:
		writeJSON(w, http.StatusOK, lk.Brand)
	case brands.OutcomeNotFound:
		writeErr(w, http.StatusNotFound, "builder not found")
	default:
		a.log.Errorw("brand lookup failed", "builder", slug, "err", lk.Cause)
		writeErr(w, http.StatusServiceUnavailable, "store unavailable")
	}
}

// buildBrandUpdate assembles one UPDATE covering every field the request
// carries. Returns an empty query when nothing is to change. Empty strings
// clear the column via NULLIF.
func buildBrandUpdate(in brandUpdate, slug string) (string, []any) {
	var sets []string
	var args []any
	set := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, fmt.Sprintf("%s=NULLIF($%d,'')", col, len(args)))
	}
	set("name", in.Name)
	set("tagline", in.Tagline)
	set("logo_url", in.LogoURL)
	set("favicon_url", in.FaviconURL)
	set("primary_color", in.PrimaryColor)
	set("accent_color", in.AccentColor)
	set("contact_email", in.ContactEmail)
	set("contact_phone", in.ContactPhone)
	set("rera_id", in.RERAID)
	set("custom_domain", in.CustomDomain)
	if in.ShowPoweredBy != nil {
		args = append(args, *in.ShowPoweredBy)
		sets = append(sets, fmt.Sprintf("show_powered_by=$%d", len(args)))
	}
	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, slug)
	return fmt.Sprintf("UPDATE builders SET %s WHERE subdomain=$%d", strings.Join(sets, ","), len(args)), args
}

// putBrand applies a partial update to the caller's white-label config.
// Tier is never writable here; it is set by billing. The attribution badge
// preference is stored as sent, but the STARTER gate is reapplied on read.
// The update is a single statement, so it either fully applies or fails.
func (a *App) putBrand(w http.ResponseWriter, r *http.Request) {
	var in brandUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	ctx := r.Context()
	slug := builderFrom(ctx)

	query, args := buildBrandUpdate(in, slug)
	if query != "" {
		tag, err := a.db.Exec(ctx, query, args...)
		if err != nil {
			a.log.Errorw("brand update failed", "builder", slug, "err", err)
			writeErr(w, http.StatusInternalServerError, "update failed")
			return
		}
		if tag.RowsAffected() == 0 {
			writeErr(w, http.StatusNotFound, "builder not found")
			return
		}
	}

	a.getBrand(w, r)
}
