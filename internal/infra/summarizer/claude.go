// Package summarizer provides AI-powered text summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns: circuit breaking, retry with backoff, outbound rate limiting, and
// Prometheus metrics. Every adapter implements the pipeline's Provider
// boundary: Summarize(ctx, text, maxLen, minLen).
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"studynotes/internal/resilience/circuitbreaker"
	"studynotes/internal/resilience/retry"
	"studynotes/internal/utils/text"
)

// ClaudeConfig holds configuration parameters for the Claude summarizer.
// Configuration is loaded from environment variables with fallback to defaults.
type ClaudeConfig struct {
	// Model is the Claude API model identifier to use for summarization.
	Model string

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration

	// RequestsPerSecond is the sustained outbound request rate.
	RequestsPerSecond float64

	// Burst is the token bucket burst capacity.
	Burst int
}

// GetModel implements ProviderConfig.
func (c ClaudeConfig) GetModel() string {
	return c.Model
}

// Validate implements ProviderConfig.
func (c ClaudeConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", c.RequestsPerSecond)
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	}
	return nil
}

// LoadClaudeConfig loads configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_MODEL: Claude model identifier (default: claude-sonnet-4-5)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
//   - SUMMARIZER_RPS: outbound request rate (default: 2.0)
func LoadClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:             getEnvOrDefault("SUMMARIZER_MODEL", string(anthropic.ModelClaudeSonnet4_5_20250929)),
		Timeout:           getEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
		RequestsPerSecond: getEnvFloat("SUMMARIZER_RPS", 2.0),
		Burst:             5,
	}
}

// Claude implements the pipeline Provider interface using Anthropic's Claude API.
// It includes circuit breaker, retry, and rate limit logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	rateLimiter     *RateLimiter
	config          ClaudeConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
// It automatically configures circuit breaker, retry logic, rate limiting,
// and metrics recording.
func NewClaude(apiKey string) *Claude {
	config := LoadClaudeConfig()

	slog.Info("Initialized Claude summarizer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		rateLimiter:     NewRateLimiter(config.RequestsPerSecond, config.Burst),
		config:          config,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// CircuitState reports the current circuit breaker state for health probes.
func (c *Claude) CircuitState() string {
	return c.circuitBreaker.State().String()
}

// Summarize generates a summary of the given text between minLen and maxLen
// words using Claude. The bounds are targets, not guarantees: a very short
// chunk or a diverging model may produce text outside the range.
func (c *Claude) Summarize(ctx context.Context, input string, maxLen, minLen int) (string, error) {
	if err := ValidateBounds(maxLen, minLen); err != nil {
		return "", err
	}

	if err := c.rateLimiter.Allow(ctx); err != nil {
		return "", fmt.Errorf("claude rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, input, maxLen, minLen)
		})

		// Handle circuit breaker open state
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// buildPrompt constructs the summarization prompt from the word bounds.
func buildPrompt(input string, maxLen, minLen int) string {
	return fmt.Sprintf("Summarize the following text in %d to %d words. Respond with only the summary text:\n%s",
		minLen, maxLen, input)
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, input string, maxLen, minLen int) (string, error) {
	requestID := uuid.New().String()

	// Guard against oversized input (the pipeline chunks well below this)
	truncated := input
	if text.CountRunes(input) > maxInputRunes {
		truncated = text.TruncateRunes(input, maxInputRunes) + "...\n(input truncated)"
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_runes", text.CountRunes(input)))
	}

	prompt := buildPrompt(truncated, maxLen, minLen)

	slog.InfoContext(ctx, "Starting chunk summarization",
		slog.String("request_id", requestID),
		slog.Int("input_runes", text.CountRunes(truncated)),
		slog.Int("max_len", maxLen),
		slog.Int("min_len", minLen))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model: anthropic.Model(c.config.Model),
		// Word bounds are prompt-level targets; the token cap only needs
		// enough headroom for maxLen words.
		MaxTokens: int64(maxLen * 2),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Chunk summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	recordSummary(ctx, c.metricsRecorder, summary, maxLen, minLen, duration, requestID)

	return summary, nil
}

// recordSummary logs and records metrics for one generated chunk summary.
// Shared by the Claude and OpenAI adapters.
func recordSummary(ctx context.Context, recorder SummaryMetricsRecorder, summary string, maxLen, minLen int, duration time.Duration, requestID string) {
	words := len(strings.Fields(summary))
	withinBounds := words >= minLen && words <= maxLen

	slog.InfoContext(ctx, "Chunk summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_words", words),
		slog.Bool("within_bounds", withinBounds),
		slog.Duration("duration", duration))

	if !withinBounds {
		slog.WarnContext(ctx, "Summary outside requested bounds",
			slog.String("request_id", requestID),
			slog.Int("summary_words", words),
			slog.Int("max_len", maxLen),
			slog.Int("min_len", minLen))
	}

	recorder.RecordWords(words)
	recorder.RecordDuration(duration)
	recorder.RecordCompliance(withinBounds)
	if !withinBounds {
		recorder.RecordBoundsExceeded()
	}
}
