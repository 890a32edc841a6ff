package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		c, err := parseClassification(`{"documentType":"AGREEMENT","confidence":0.92,"extractedData":{"parties":"Shiva Buildcon / P. Nair"}}`)
		require.NoError(t, err)
		assert.Equal(t, "AGREEMENT", c.DocumentType)
		assert.InDelta(t, 0.92, c.Confidence, 1e-9)
		assert.Equal(t, "Shiva Buildcon / P. Nair", c.ExtractedData["parties"])
	})

	t.Run("snake case keys", func(t *testing.T) {
		c, err := parseClassification(`{"document_type":"RECEIPT","confidence":0.8,"extracted_data":{"amount":"500000"}}`)
		require.NoError(t, err)
		assert.Equal(t, "RECEIPT", c.DocumentType)
		assert.Equal(t, "500000", c.ExtractedData["amount"])
	})

	t.Run("fenced code block", func(t *testing.T) {
		raw := "```json\n{\"documentType\":\"RERA_CERTIFICATE\",\"confidence\":0.97,\"extractedData\":{}}\n```"
		c, err := parseClassification(raw)
		require.NoError(t, err)
		assert.Equal(t, "RERA_CERTIFICATE", c.DocumentType)
	})

	t.Run("missing extracted data defaults empty", func(t *testing.T) {
		c, err := parseClassification(`{"documentType":"OTHER","confidence":0.4}`)
		require.NoError(t, err)
		assert.NotNil(t, c.ExtractedData)
		assert.Empty(t, c.ExtractedData)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseClassification("I could not classify this document.")
		assert.Error(t, err)
	})

	t.Run("missing document type", func(t *testing.T) {
		_, err := parseClassification(`{"confidence":0.9}`)
		assert.Error(t, err)
	})
}
