package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Healthy(t *testing.T) {
	handler := HealthHandler{
		Version:        "1.2.3",
		SummarizerType: "claude",
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "healthy", resp.Checks["summarizer"].Status)
	assert.Equal(t, "claude", resp.Checks["summarizer"].Message)
}

type stubCircuit struct{ state string }

func (s stubCircuit) CircuitState() string { return s.state }

func TestHealthHandler_ReportsCircuitState(t *testing.T) {
	handler := HealthHandler{
		Version:        "1.2.3",
		SummarizerType: "claude",
		Circuit:        stubCircuit{state: "closed"},
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "closed", resp.Checks["circuit_breaker"].Message)
}

func TestHealthHandler_SummarizerInitFailed(t *testing.T) {
	handler := HealthHandler{
		Version:       "1.2.3",
		SummarizerErr: errors.New("ANTHROPIC_API_KEY is not set"),
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unhealthy", resp.Checks["summarizer"].Status)
	// The raw error must never leak into the probe response.
	assert.NotContains(t, rec.Body.String(), "ANTHROPIC_API_KEY")
}
