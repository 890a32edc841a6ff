package adminapi

import (
	"net/http"

	"artha/internal/portal"
)

type investorRow struct {
	portal.Investor
	Investments   int     `json:"investments"`
	TotalInvested float64 `json:"total_invested"`
	TotalPaid     float64 `json:"total_paid"`
}

func (a *App) listInvestors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, err := a.builderID(ctx)
	if err != nil {
		writeErr(w, http.StatusForbidden, err.Error())
		return
	}
	rows, err := a.db.Query(ctx, `
	  SELECT i.id, i.name, i.email, COALESCE(i.phone,''), i.is_nri, COALESCE(i.country,''),
	    COUNT(v.id), COALESCE(SUM(v.total_agreed_amount),0), COALESCE(SUM(v.total_paid),0)
	  FROM investors i
	  LEFT JOIN investments v ON v.investor_id = i.id
	  WHERE i.builder_id = $1
	  GROUP BY i.id, i.name, i.email, i.phone, i.is_nri, i.country
	  ORDER BY i.name`, bid)
	if err != nil {
		a.log.Errorw("list investors failed", "builder", bid, "err", err)
		writeErr(w, http.StatusInternalServerError, "query failed")
		return
	}
	defer rows.Close()

	out := make([]investorRow, 0, 16)
	for rows.Next() {
		var ir investorRow
		if err := rows.Scan(&ir.ID, &ir.Name, &ir.Email, &ir.Phone, &ir.IsNRI, &ir.Country,
			&ir.Investments, &ir.TotalInvested, &ir.TotalPaid); err != nil {
			writeErr(w, http.StatusInternalServerError, "scan failed")
			return
		}
		out = append(out, ir)
	}
	writeJSON(w, http.StatusOK, out)
}
