package notes

import "context"

// Provider is the summarization capability consumed by the Service.
// This abstraction allows switching between different AI backends
// (Claude, OpenAI, a no-op stub) without changing business logic.
//
// maxLen and minLen are the word-length bounds from the selected
// LengthPolicy. Implementations should aim for output inside the bounds but
// are not required to guarantee them; a short chunk or a diverging model may
// produce text outside the range.
type Provider interface {
	// Summarize compresses text into a shorter natural-language span.
	// It blocks until the backend responds or ctx is done.
	Summarize(ctx context.Context, text string, maxLen, minLen int) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface,
// mirroring http.HandlerFunc. Useful for tests and small stubs.
type ProviderFunc func(ctx context.Context, text string, maxLen, minLen int) (string, error)

// Summarize calls the wrapped function.
func (f ProviderFunc) Summarize(ctx context.Context, text string, maxLen, minLen int) (string, error) {
	return f(ctx, text, maxLen, minLen)
}
