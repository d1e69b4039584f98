package summarizer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"studynotes/internal/domain/entity"
)

// maxInputRunes caps the text sent to an AI API in a single call.
// The pipeline chunks input well below this, but the guard keeps a
// misconfigured caller from blowing the model context window.
const maxInputRunes = 10000

// ProviderConfig is the common interface for provider configuration.
// Both the Claude and OpenAI implementations satisfy it so the factory can
// validate configuration uniformly.
type ProviderConfig interface {
	// GetModel returns the backend model identifier.
	GetModel() string

	// Validate validates the configuration and returns an error if invalid.
	Validate() error
}

// ValidateBounds checks the word-length bounds passed to a provider call.
// The pipeline contract requires maxLen > minLen > 0; anything else is a
// caller contract violation surfaced as entity.ErrInvalidInput.
func ValidateBounds(maxLen, minLen int) error {
	if minLen <= 0 {
		return fmt.Errorf("%w: min length must be positive, got %d", entity.ErrInvalidInput, minLen)
	}
	if maxLen <= minLen {
		return fmt.Errorf("%w: max length %d must exceed min length %d", entity.ErrInvalidInput, maxLen, minLen)
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat parses float environment variable with default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration parses duration environment variable with default.
// Supports formats like "30s", "1m", "2h".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
