// internal/portal/handler.go
package portal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"artha/pkg/authn"
	"artha/pkg/brands"
	"artha/pkg/middleware"

	"artha/internal/rera"
)

// Handlers serves the investor-facing API. All data access is scoped to the
// builder slug resolved from the request hostname.
type Handlers struct {
	store  Store
	brands *brands.Service
	rera   rera.Client
	authn  *authn.Client
	log    *zap.SugaredLogger
}

func NewHandlers(store Store, brandSvc *brands.Service, reraClient rera.Client, authClient *authn.Client, log *zap.SugaredLogger) *Handlers {
	return &Handlers{store: store, brands: brandSvc, rera: reraClient, authn: authClient, log: log}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/brand", h.getBrand)
	r.Get("/api/dashboard", h.getDashboard)
	r.Get("/api/projects", h.listProjects)
	r.Get("/api/projects/{id}", h.getProject)
	r.Get("/api/projects/{id}/rera", h.getProjectRERA)
	r.Get("/api/investments", h.listInvestments)
	r.Get("/api/notifications", h.listNotifications)
	r.Get("/api/documents", h.listDocuments)
	r.Get("/api/auth/session", h.getSession)
	r.Post("/api/auth/session", h.postSession)
}

// response is the envelope every portal endpoint returns.
type response struct {
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

func ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response{Data: data, Success: true})
}

func fail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Error: msg})
}

// brandView is the served brand projection with tier gates already applied:
// consumers never see a STARTER builder with the badge hidden, and the custom
// domain is marked routable only for ENTERPRISE.
type brandView struct {
	Subdomain          string `json:"subdomain"`
	Name               string `json:"name"`
	Tagline            string `json:"tagline,omitempty"`
	LogoURL            string `json:"logo_url,omitempty"`
	FaviconURL         string `json:"favicon_url,omitempty"`
	PrimaryColor       string `json:"primary_color"`
	AccentColor        string `json:"accent_color"`
	ContactEmail       string `json:"contact_email,omitempty"`
	ContactPhone       string `json:"contact_phone,omitempty"`
	RERAID             string `json:"rera_id,omitempty"`
	Tier               string `json:"tier"`
	ShowPoweredBy      bool   `json:"show_powered_by"`
	CustomDomain       string `json:"custom_domain,omitempty"`
	CustomDomainActive bool   `json:"custom_domain_active"`
}

func viewOf(b brands.Brand) brandView {
	return brandView{
		Subdomain: b.Subdomain, Name: b.Name, Tagline: b.Tagline,
		LogoURL: b.LogoURL, FaviconURL: b.FaviconURL,
		PrimaryColor: b.PrimaryColor, AccentColor: b.AccentColor,
		ContactEmail: b.ContactEmail, ContactPhone: b.ContactPhone,
		RERAID: b.RERAID, Tier: string(b.Tier),
		ShowPoweredBy:      b.EffectiveShowPoweredBy(),
		CustomDomain:       b.CustomDomain,
		CustomDomainActive: b.CustomDomainActive(),
	}
}

func (h *Handlers) getBrand(w http.ResponseWriter, r *http.Request) {
	b := h.brands.Resolve(r.Context(), middleware.SlugFrom(r.Context()))
	ok(w, viewOf(b))
}

// investor resolves the requesting investor: the authenticated user's record
// in auth mode, the demo investor otherwise.
func (h *Handlers) investor(r *http.Request) (Investor, error) {
	authID := ""
	if s := middleware.SessionFrom(r.Context()); s != nil {
		authID = s.UserID
	}
	return h.store.ResolveInvestor(r.Context(), middleware.SlugFrom(r.Context()), authID)
}

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) {
	inv, err := h.investor(r)
	if err != nil {
		fail(w, http.StatusNotFound, "no investor profile")
		return
	}
	sum, err := h.store.Dashboard(r.Context(), middleware.SlugFrom(r.Context()), inv.ID)
	if err != nil {
		h.log.Errorw("dashboard", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	ok(w, map[string]any{"investor": inv, "summary": sum})
}

func (h *Handlers) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context(), middleware.SlugFrom(r.Context()))
	if err != nil {
		h.log.Errorw("list projects", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	if projects == nil {
		projects = []Project{}
	}
	ok(w, projects)
}

func (h *Handlers) getProject(w http.ResponseWriter, r *http.Request) {
	detail, err := h.store.GetProject(r.Context(), middleware.SlugFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			fail(w, http.StatusNotFound, "project not found")
			return
		}
		h.log.Errorw("get project", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load project")
		return
	}
	ok(w, detail)
}

func (h *Handlers) getProjectRERA(w http.ResponseWriter, r *http.Request) {
	detail, err := h.store.GetProject(r.Context(), middleware.SlugFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, http.StatusNotFound, "project not found")
		return
	}
	if detail.RERANumber == "" {
		fail(w, http.StatusNotFound, "project has no RERA registration")
		return
	}
	status, err := h.rera.CheckCompliance(r.Context(), detail.RERANumber, detail.RERAState)
	if err != nil {
		h.log.Errorw("rera check", "err", err)
		fail(w, http.StatusBadGateway, "registry unavailable")
		return
	}
	ok(w, status)
}

func (h *Handlers) listInvestments(w http.ResponseWriter, r *http.Request) {
	inv, err := h.investor(r)
	if err != nil {
		fail(w, http.StatusNotFound, "no investor profile")
		return
	}
	list, err := h.store.ListInvestments(r.Context(), middleware.SlugFrom(r.Context()), inv.ID)
	if err != nil {
		h.log.Errorw("list investments", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load investments")
		return
	}
	if list == nil {
		list = []Investment{}
	}
	ok(w, list)
}

func (h *Handlers) listNotifications(w http.ResponseWriter, r *http.Request) {
	inv, err := h.investor(r)
	if err != nil {
		fail(w, http.StatusNotFound, "no investor profile")
		return
	}
	list, err := h.store.ListNotifications(r.Context(), middleware.SlugFrom(r.Context()), inv.ID)
	if err != nil {
		h.log.Errorw("list notifications", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load notifications")
		return
	}
	if list == nil {
		list = []Notification{}
	}
	ok(w, list)
}

func (h *Handlers) listDocuments(w http.ResponseWriter, r *http.Request) {
	inv, err := h.investor(r)
	if err != nil {
		fail(w, http.StatusNotFound, "no investor profile")
		return
	}
	list, err := h.store.ListDocuments(r.Context(), middleware.SlugFrom(r.Context()), inv.ID)
	if err != nil {
		h.log.Errorw("list documents", "err", err)
		fail(w, http.StatusInternalServerError, "failed to load documents")
		return
	}
	if list == nil {
		list = []Document{}
	}
	ok(w, list)
}

// getSession is session introspection for the SPA shell.
func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	if h.authn == nil {
		ok(w, map[string]any{"authenticated": false, "demo": true})
		return
	}
	access, refresh := authn.TokensFromRequest(r)
	sess, refreshed, err := h.authn.VerifySession(r.Context(), access, refresh)
	if err != nil {
		ok(w, map[string]any{"authenticated": false})
		return
	}
	if refreshed {
		authn.WriteCookies(w, sess)
	}
	ok(w, map[string]any{"authenticated": true, "user_id": sess.UserID, "email": sess.Email})
}

func (h *Handlers) postSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Action != "logout" {
		fail(w, http.StatusBadRequest, "unknown action")
		return
	}
	if h.authn != nil {
		access, _ := authn.TokensFromRequest(r)
		if access != "" {
			_ = h.authn.SignOut(r.Context(), access)
		}
	}
	authn.ClearCookies(w)
	ok(w, map[string]any{"logged_out": true})
}
