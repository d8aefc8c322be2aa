package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseOK_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseOK(rec, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestResponseBadRequest_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "Validation failed", map[string]string{"email": "Invalid email format"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, map[string]any{"email": "Invalid email format"}, body.Errors)
}
