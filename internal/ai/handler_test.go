package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDemoRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewClient("", ""), zap.NewNop().Sugar())
	return r
}

func TestPredictReturns_DemoStreamsCannedText(t *testing.T) {
	router := newDemoRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/ai/return-predictor",
		strings.NewReader(`{"investment_data":{"project_name":"ShivaOS Skyline"}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, demoPrediction, rec.Body.String())
}

func TestGenerateUpdate_Demo(t *testing.T) {
	router := newDemoRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/ai/update-generator",
		strings.NewReader(`{"project_name":"ShivaOS Skyline","progress":68}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out["update"])
}

func TestClassifyDocument_Demo(t *testing.T) {
	router := newDemoRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/ai/classify-document",
		strings.NewReader(`{"file_name":"agreement.pdf","text":"AGREEMENT OF SALE between..."}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var c Classification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.NotEmpty(t, c.DocumentType)
	assert.NotNil(t, c.ExtractedData)
}

func TestClientEnabled(t *testing.T) {
	assert.False(t, NewClient("", "model").Enabled())
	assert.True(t, NewClient("sk-key", "model").Enabled())
}
