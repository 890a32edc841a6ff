package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"artha/internal/ai"
	"artha/internal/portal"
	"artha/pkg/db"
)

type projectInput struct {
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Location           string     `json:"location"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	RERANumber         string     `json:"rera_number"`
	RERAState          string     `json:"rera_state"`
	TotalUnits         int        `json:"total_units"`
	TotalProjectValue  float64    `json:"total_project_value"`
	TotalFundingTarget float64    `json:"total_funding_target"`
	FundingRaised      float64    `json:"funding_raised"`
	ConstructionStart  *time.Time `json:"construction_start"`
	ExpectedCompletion *time.Time `json:"expected_completion"`
	OverallProgress    int        `json:"overall_progress"`
	Status             string     `json:"status"`
	ProjectType        string     `json:"project_type"`
	ThumbnailURL       string     `json:"thumbnail_url"`
}

func (in projectInput) normalized() projectInput {
	if in.Status == "" {
		in.Status = "UPCOMING"
	}
	if in.ProjectType == "" {
		in.ProjectType = "RESIDENTIAL"
	}
	in.Status = strings.ToUpper(in.Status)
	in.ProjectType = strings.ToUpper(in.ProjectType)
	return in
}

func (a *App) listProjects(w http.ResponseWriter, r *http.Request) {
	slug := builderFrom(r.Context())
	projects, err := portal.NewPostgresStore(a.db, a.log).ListProjects(r.Context(), slug)
	if err != nil {
		a.log.Errorw("list projects failed", "builder", slug, "err", err)
		writeErr(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (a *App) createProject(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	in = in.normalized()
	if in.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	ctx := r.Context()
	bid, err := a.builderID(ctx)
	if err != nil {
		writeErr(w, http.StatusForbidden, err.Error())
		return
	}
	id := uuid.New().String()
	tx, err := db.BeginTxWithBuilder(ctx, a.db, bid)
	if err != nil {
		writeErr(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()
	_, err = tx.Exec(ctx, `INSERT INTO projects(id,builder_id,name,description,location,city,state,rera_number,rera_state,
	    total_units,total_project_value,total_funding_target,funding_raised,construction_start,expected_completion,
	    overall_progress,status,project_type,thumbnail_url)
	  VALUES ($1,$2,$3,NULLIF($4,''),NULLIF($5,''),NULLIF($6,''),NULLIF($7,''),NULLIF($8,''),NULLIF($9,''),
	    $10,$11,$12,$13,$14,$15,$16,$17,$18,NULLIF($19,''))`,
		id, bid, in.Name, in.Description, in.Location, in.City, in.State, in.RERANumber, in.RERAState,
		in.TotalUnits, in.TotalProjectValue, in.TotalFundingTarget, in.FundingRaised, in.ConstructionStart, in.ExpectedCompletion,
		in.OverallProgress, in.Status, in.ProjectType, in.ThumbnailURL)
	if err != nil {
		a.log.Errorw("create project failed", "builder", bid, "err", err)
		writeErr(w, http.StatusInternalServerError, "insert failed")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		writeErr(w, http.StatusInternalServerError, "commit failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *App) updateProject(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	in = in.normalized()
	ctx := r.Context()
	bid, err := a.builderID(ctx)
	if err != nil {
		writeErr(w, http.StatusForbidden, err.Error())
		return
	}
	id := chi.URLParam(r, "id")
	tag, err := a.db.Exec(ctx, `UPDATE projects SET name=$1,description=NULLIF($2,''),location=NULLIF($3,''),
	    city=NULLIF($4,''),state=NULLIF($5,''),rera_number=NULLIF($6,''),rera_state=NULLIF($7,''),
	    total_units=$8,total_project_value=$9,total_funding_target=$10,funding_raised=$11,
	    construction_start=$12,expected_completion=$13,overall_progress=$14,status=$15,project_type=$16,
	    thumbnail_url=NULLIF($17,''),updated_at=NOW()
	  WHERE id=$18 AND builder_id=$19`,
		in.Name, in.Description, in.Location, in.City, in.State, in.RERANumber, in.RERAState,
		in.TotalUnits, in.TotalProjectValue, in.TotalFundingTarget, in.FundingRaised,
		in.ConstructionStart, in.ExpectedCompletion, in.OverallProgress, in.Status, in.ProjectType,
		in.ThumbnailURL, id, bid)
	if err != nil {
		a.log.Errorw("update project failed", "project", id, "err", err)
		writeErr(w, http.StatusInternalServerError, "update failed")
		return
	}
	if tag.RowsAffected() == 0 {
		writeErr(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *App) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, err := a.builderID(ctx)
	if err != nil {
		writeErr(w, http.StatusForbidden, err.Error())
		return
	}
	id := chi.URLParam(r, "id")
	tag, err := a.db.Exec(ctx, `DELETE FROM projects WHERE id=$1 AND builder_id=$2`, id, bid)
	if err != nil {
		a.log.Errorw("delete project failed", "project", id, "err", err)
		writeErr(w, http.StatusInternalServerError, "delete failed")
		return
	}
	if tag.RowsAffected() == 0 {
		writeErr(w, http.StatusNotFound, "project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateInput struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	UpdateType string   `json:"update_type"`
	PhotoURLs  []string `json:"photo_urls"`
	Notes      string   `json:"notes"`   // raw site notes; used when drafting with AI
	UseAI      bool     `json:"use_ai"`  // draft the body from notes
	Publish    bool     `json:"publish"` // publish immediately
}

// postUpdate records a construction update for a project. When use_ai is set
// and the model is configured, the body is drafted from the raw notes.
func (a *App) postUpdate(w http.ResponseWriter, r *http.Request) {
	var in updateInput
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	ctx := r.Context()
	bid, err := a.builderID(ctx)
	if err != nil {
		writeErr(w, http.StatusForbidden, err.Error())
		return
	}
	id := chi.URLParam(r, "id")

	var exists bool
	if err := a.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id=$1 AND builder_id=$2)`, id, bid).Scan(&exists); err != nil || !exists {
		writeErr(w, http.StatusNotFound, "project not found")
		return
	}

	aiGenerated := false
	if in.UseAI && a.ai != nil && a.ai.Enabled() {
		draft, err := a.ai.Generate(ctx, ai.UpdateGeneratorSystem, in.Notes, 1024)
		if err != nil {
			a.log.Warnw("update draft failed, keeping raw notes", "project", id, "err", err)
		} else {
			in.Body = draft
			aiGenerated = true
		}
	}
	if in.Body == "" {
		in.Body = in.Notes
	}
	if in.Title == "" || in.Body == "" {
		writeErr(w, http.StatusBadRequest, "title and body (or notes) are required")
		return
	}
	if in.UpdateType == "" {
		in.UpdateType = "CONSTRUCTION"
	}
	if in.PhotoURLs == nil {
		in.PhotoURLs = []string{}
	}
	var publishedAt *time.Time
	if in.Publish {
		now := time.Now().UTC()
		publishedAt = &now
	}

	uid := uuid.New().String()
	_, err = a.db.Exec(ctx, `INSERT INTO project_updates(id,project_id,title,body,update_type,photo_urls,ai_generated,published_at)
	  VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		uid, id, in.Title, in.Body, strings.ToUpper(in.UpdateType), in.PhotoURLs, aiGenerated, publishedAt)
	if err != nil {
		a.log.Errorw("create update failed", "project", id, "err", err)
		writeErr(w, http.StatusInternalServerError, "insert failed")
		return
	}
	writeJSON(w, http.StatusCreated, portal.Update{
		ID: uid, ProjectID: id, Title: in.Title, Body: in.Body,
		UpdateType: strings.ToUpper(in.UpdateType), PhotoURLs: in.PhotoURLs,
		AIGenerated: aiGenerated, PublishedAt: publishedAt,
	})
}
