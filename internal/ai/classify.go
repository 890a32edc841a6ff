// internal/ai/classify.go
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	jmes "github.com/jmespath/go-jmespath"
)

// Classification is the structured result of document classification.
type Classification struct {
	DocumentType  string         `json:"document_type"`
	Confidence    float64        `json:"confidence"`
	ExtractedData map[string]any `json:"extracted_data"`
}

// Field extraction paths applied to the model's JSON output. The model is
// prompted to a fixed shape but occasionally nests differently; JMESPath
// absorbs the variation in one place.
var classifyPaths = map[string]string{
	"document_type": "documentType || document_type",
	"confidence":    "confidence",
	"extracted":     "extractedData || extracted_data",
}

// parseClassification pulls the classification fields out of raw model
// output. Tolerates fenced code blocks around the JSON.
func parseClassification(raw string) (Classification, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "{"); i > 0 {
		raw = raw[i:]
	}
	if i := strings.LastIndex(raw, "}"); i >= 0 {
		raw = raw[:i+1]
	}
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Classification{}, fmt.Errorf("classifier output is not JSON: %w", err)
	}

	var c Classification
	if v, err := jmes.Search(classifyPaths["document_type"], doc); err == nil {
		c.DocumentType, _ = v.(string)
	}
	if v, err := jmes.Search(classifyPaths["confidence"], doc); err == nil {
		if f, ok := v.(float64); ok {
			c.Confidence = f
		}
	}
	if v, err := jmes.Search(classifyPaths["extracted"], doc); err == nil {
		if m, ok := v.(map[string]any); ok {
			c.ExtractedData = m
		}
	}
	if c.DocumentType == "" {
		return Classification{}, fmt.Errorf("classifier output missing documentType")
	}
	if c.ExtractedData == nil {
		c.ExtractedData = map[string]any{}
	}
	return c, nil
}
