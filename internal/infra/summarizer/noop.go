package summarizer

import (
	"context"
	"strings"
)

// NoOp is a summarizer that returns the original text truncated to the
// requested maximum word count, without calling any external API.
// This is useful for testing and development when summarization is not needed.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the original text truncated to maxLen words.
func (n *NoOp) Summarize(_ context.Context, input string, maxLen, minLen int) (string, error) {
	if err := ValidateBounds(maxLen, minLen); err != nil {
		return "", err
	}
	words := strings.Fields(input)
	if len(words) <= maxLen {
		return strings.TrimSpace(input), nil
	}
	return strings.Join(words[:maxLen], " ") + "...", nil
}
