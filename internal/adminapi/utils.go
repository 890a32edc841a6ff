package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// builderID resolves the authenticated builder slug to its row ID.
func (a *App) builderID(ctx context.Context) (string, error) {
	slug := builderFrom(ctx)
	if slug == "" {
		return "", errors.New("no builder in context")
	}
	var id string
	err := a.db.QueryRow(ctx, `SELECT id FROM builders WHERE subdomain=$1`, slug).Scan(&id)
	if err == pgx.ErrNoRows {
		return "", errors.New("unknown builder " + slug)
	}
	return id, err
}
