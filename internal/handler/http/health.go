// Package http provides HTTP handlers and middleware for the study notes
// service: summarization endpoints, health checks, request logging, panic
// recovery, timeouts, and rate limiting.
package http

import (
	"net/http"
	"time"

	"studynotes/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`            // "healthy" or "unhealthy"
	Message string `json:"message,omitempty"` // Optional status message
}

// CircuitStateReporter is implemented by providers that expose their circuit
// breaker state for health probes.
type CircuitStateReporter interface {
	CircuitState() string
}

// HealthHandler handles health check endpoint requests. The summarizer check
// reports whether a provider was constructed at startup and, when available,
// its circuit breaker state; it never calls the AI API, so the probe stays
// cheap and free.
type HealthHandler struct {
	Version        string
	SummarizerType string
	SummarizerErr  error
	Circuit        CircuitStateReporter
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{}

	status := "healthy"
	code := http.StatusOK

	if h.SummarizerErr != nil {
		checks["summarizer"] = CheckStatus{
			Status:  "unhealthy",
			Message: "provider initialization failed",
		}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		checks["summarizer"] = CheckStatus{
			Status:  "healthy",
			Message: h.SummarizerType,
		}
	}

	if h.Circuit != nil {
		checks["circuit_breaker"] = CheckStatus{
			Status:  "healthy",
			Message: h.Circuit.CircuitState(),
		}
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}
