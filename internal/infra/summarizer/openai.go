package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"studynotes/internal/resilience/circuitbreaker"
	"studynotes/internal/resilience/retry"
	"studynotes/internal/utils/text"
)

// OpenAIConfig holds configuration parameters for the OpenAI summarizer.
// Configuration is loaded from environment variables with fallback to defaults.
type OpenAIConfig struct {
	// Model is the OpenAI API model identifier to use for summarization.
	Model string

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration

	// RequestsPerSecond is the sustained outbound request rate.
	RequestsPerSecond float64

	// Burst is the token bucket burst capacity.
	Burst int
}

// GetModel implements ProviderConfig.
func (c OpenAIConfig) GetModel() string {
	return c.Model
}

// Validate implements ProviderConfig.
func (c OpenAIConfig) Validate() error {
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

// LoadOpenAIConfig loads configuration from environment variables.
// Returns an error if the resulting configuration is invalid (fail-closed).
//
// Environment variables:
//   - SUMMARIZER_MODEL: OpenAI model identifier (default: gpt-4o-mini)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
//   - SUMMARIZER_RPS: outbound request rate (default: 2.0)
func LoadOpenAIConfig() (OpenAIConfig, error) {
	config := OpenAIConfig{
		Model:             getEnvOrDefault("SUMMARIZER_MODEL", openai.GPT4oMini),
		Timeout:           getEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
		RequestsPerSecond: getEnvFloat("SUMMARIZER_RPS", 2.0),
		Burst:             5,
	}
	if err := config.Validate(); err != nil {
		return OpenAIConfig{}, fmt.Errorf("invalid OpenAI configuration: %w", err)
	}
	return config, nil
}

// OpenAI implements the pipeline Provider interface using OpenAI's chat API.
// It includes circuit breaker, retry, and rate limit logic for improved reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	rateLimiter     *RateLimiter
	config          OpenAIConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key and
// validated configuration.
func NewOpenAI(apiKey string, config OpenAIConfig) *OpenAI {
	slog.Info("Initialized OpenAI summarizer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		rateLimiter:     NewRateLimiter(config.RequestsPerSecond, config.Burst),
		config:          config,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// CircuitState reports the current circuit breaker state for health probes.
func (o *OpenAI) CircuitState() string {
	return o.circuitBreaker.State().String()
}

// Summarize generates a summary of the given text between minLen and maxLen
// words using OpenAI. Bounds are targets, not guarantees.
func (o *OpenAI) Summarize(ctx context.Context, input string, maxLen, minLen int) (string, error) {
	if err := ValidateBounds(maxLen, minLen); err != nil {
		return "", err
	}

	if err := o.rateLimiter.Allow(ctx); err != nil {
		return "", fmt.Errorf("openai rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, input, maxLen, minLen)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, input string, maxLen, minLen int) (string, error) {
	requestID := uuid.New().String()

	truncated := input
	if text.CountRunes(input) > maxInputRunes {
		truncated = text.TruncateRunes(input, maxInputRunes) + "...\n(input truncated)"
		slog.Warn("text truncated for openai api",
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

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: maxLen * 2,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Chunk summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// Safety check to prevent panic on array access
	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	recordSummary(ctx, o.metricsRecorder, summary, maxLen, minLen, duration, requestID)

	return summary, nil
}
