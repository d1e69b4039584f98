package summarizer

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"studynotes/internal/usecase/notes"
)

var (
	defaultOnce     sync.Once
	defaultProvider notes.Provider
	defaultErr      error
)

// Default returns the process-wide summarization provider, constructing it
// exactly once on first use. Backends are expensive to configure and hold
// connection state, so the instance is shared and read-only after
// construction; there is no teardown before process exit.
func Default() (notes.Provider, error) {
	defaultOnce.Do(func() {
		defaultProvider, defaultErr = NewFromEnv()
	})
	return defaultProvider, defaultErr
}

// NewFromEnv creates a summarization provider based on the SUMMARIZER_TYPE
// environment variable (claude, openai, or noop; default claude).
func NewFromEnv() (notes.Provider, error) {
	summarizerType := os.Getenv("SUMMARIZER_TYPE")
	if summarizerType == "" {
		summarizerType = "claude"
	}

	switch summarizerType {
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when SUMMARIZER_TYPE=claude")
		}
		slog.Info("Using Claude API for summarization", slog.String("type", "claude"))
		return NewClaude(apiKey), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when SUMMARIZER_TYPE=openai")
		}
		config, err := LoadOpenAIConfig()
		if err != nil {
			return nil, fmt.Errorf("load openai configuration: %w", err)
		}
		slog.Info("Using OpenAI API for summarization",
			slog.String("type", "openai"),
			slog.String("model", config.Model))
		return NewOpenAI(apiKey, config), nil
	case "noop":
		slog.Info("Using no-op summarizer", slog.String("type", "noop"))
		return NewNoOp(), nil
	default:
		return nil, fmt.Errorf("invalid SUMMARIZER_TYPE %q: expected claude, openai, or noop", summarizerType)
	}
}
