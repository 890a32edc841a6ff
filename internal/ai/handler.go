// internal/ai/handler.go
package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"artha/pkg/problems"
)

// RegisterRoutes mounts the AI endpoints: the streaming return predictor, the
// construction-update generator, and the document classifier.
func RegisterRoutes(r chi.Router, c *Client, log *zap.SugaredLogger) {
	r.Post("/api/ai/return-predictor", predictReturns(c, log))
	r.Post("/api/ai/update-generator", generateUpdate(c, log))
	r.Post("/api/ai/classify-document", classifyDocument(c, log))
}

type investmentData struct {
	ProjectName    string `json:"project_name"`
	Location       string `json:"location"`
	Unit           string `json:"unit"`
	InvestedAmount string `json:"invested_amount"`
	Progress       int    `json:"progress"`
	RERANumber     string `json:"rera_number"`
	PossessionDate string `json:"possession_date"`
}

func (d investmentData) withDefaults() investmentData {
	if d.ProjectName == "" {
		d.ProjectName = "Sankhedi Project"
	}
	if d.Location == "" {
		d.Location = "Kolar Road, Near SAGE International School, Bhopal, MP"
	}
	if d.Unit == "" {
		d.Unit = "Residential Plot SP-07, 1800 sqft"
	}
	if d.InvestedAmount == "" {
		d.InvestedAmount = "75,00,000"
	}
	if d.Progress == 0 {
		d.Progress = 55
	}
	if d.RERANumber == "" {
		d.RERANumber = "P4500012345"
	}
	if d.PossessionDate == "" {
		d.PossessionDate = "December 2026"
	}
	return d
}

// predictReturns relays the model's answer as a live-typed chunked text
// stream; the client renders tokens as they arrive.
func predictReturns(c *Client, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			InvestmentData investmentData `json:"investment_data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		d := body.InvestmentData.withDefaults()

		userMsg := fmt.Sprintf(`Analyze this investment:
Project: %s
Location: %s
Unit: %s
Invested: ₹%s
Progress: %d%% complete
RERA Number: %s
Expected Possession: %s
Comparable market rate: ₹3,800/sqft (current) in Kolar Road micro-market, Bhopal

Provide return prediction with specific numbers, reasoning, and confidence level.`,
			d.ProjectName, d.Location, d.Unit, d.InvestedAmount, d.Progress, d.RERANumber, d.PossessionDate)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		flusher, _ := w.(http.Flusher)
		emit := func(chunk string) error {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return err
			}
			if flusher != nil {
				flusher.Flush()
			}
			return nil
		}

		if !c.Enabled() {
			streamCanned(demoPrediction, emit)
			return
		}
		if err := c.Stream(r.Context(), returnPredictorSystem, userMsg, 600, emit); err != nil {
			log.Errorw("return predictor stream", "err", err)
			// Headers already sent; just stop. The partial text is still useful.
		}
	}
}

func generateUpdate(c *Client, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProjectName   string `json:"project_name"`
			Progress      int    `json:"progress"`
			NextMilestone string `json:"next_milestone"`
			Notes         string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			problems.Write(w, http.StatusBadRequest, "bad-request", "invalid JSON body")
			return
		}
		if !c.Enabled() {
			writeJSON(w, map[string]any{"update": demoUpdate, "ai_generated": true})
			return
		}
		userMsg := fmt.Sprintf("Project: %s\nOverall progress: %d%%\nNext milestone: %s\nSite notes: %s\n\nWrite the investor update.",
			body.ProjectName, body.Progress, body.NextMilestone, body.Notes)
		text, err := c.Generate(r.Context(), UpdateGeneratorSystem, userMsg, 500)
		if err != nil {
			log.Errorw("update generator", "err", err)
			problems.Write(w, http.StatusBadGateway, "ai-unavailable", "failed to generate update")
			return
		}
		writeJSON(w, map[string]any{"update": text, "ai_generated": true})
	}
}

func classifyDocument(c *Client, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FileName string `json:"file_name"`
			Text     string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
			problems.Write(w, http.StatusBadRequest, "bad-request", "document text is required")
			return
		}
		raw := demoClassification
		if c.Enabled() {
			userMsg := fmt.Sprintf("File name: %s\n\nDocument text:\n%s", body.FileName, body.Text)
			var err error
			raw, err = c.Generate(r.Context(), documentClassifierSystem, userMsg, 400)
			if err != nil {
				log.Errorw("document classifier", "err", err)
				problems.Write(w, http.StatusBadGateway, "ai-unavailable", "failed to classify document")
				return
			}
		}
		cls, err := parseClassification(raw)
		if err != nil {
			log.Warnw("classifier output unparseable", "err", err)
			problems.Write(w, http.StatusBadGateway, "ai-unavailable", "classifier returned malformed output")
			return
		}
		writeJSON(w, cls)
	}
}

// streamCanned emits canned text in small chunks so demo mode still exercises
// the client's streaming path.
func streamCanned(text string, emit func(string) error) {
	const chunk = 48
	for i := 0; i < len(text); i += chunk {
		end := i + chunk
		if end > len(text) {
			end = len(text)
		}
		if emit(text[i:end]) != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
