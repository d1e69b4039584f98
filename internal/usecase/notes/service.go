// Package notes implements the text-segmentation and summary-assembly
// pipeline: source text is partitioned into bounded chunks, each chunk is
// summarized by an external provider under a length policy, and the per-chunk
// outputs are recombined in order into one summary and an optional bulleted
// study-notes rendering.
package notes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"studynotes/internal/domain/entity"
)

// Config controls pipeline behavior. The zero value selects the defaults.
type Config struct {
	// ChunkSize is the chunk length in runes. Default: DefaultChunkSize.
	ChunkSize int

	// Parallelism is the maximum number of concurrent provider calls per
	// request. Values <= 1 dispatch chunks sequentially. Regardless of the
	// setting, results are reassembled in original chunk order.
	Parallelism int
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 1
	}
	return c
}

// Service orchestrates the summarization pipeline against a Provider.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	provider Provider
	cfg      Config
}

// NewService creates a pipeline service around the given provider.
//
// Parameters:
//   - provider: summarization backend (Claude, OpenAI, or a stub)
//   - cfg: pipeline tuning; zero value uses defaults
func NewService(provider Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg.withDefaults(),
	}
}

// Summarize condenses text under the length policy of the given tier.
//
// The text is partitioned into chunks, each chunk is summarized by the
// provider, and the chunk summaries are joined with a single space in
// original chunk order. Empty input returns "" without invoking the provider.
//
// Failure is all-or-nothing at the request level: if the provider fails for
// any chunk, the whole call fails with a *ChunkError identifying the failing
// chunk index, and no partial output is returned. The service performs no
// retries of its own; retry policy belongs to the provider boundary.
func (s *Service) Summarize(ctx context.Context, text string, tier entity.Tier) (string, error) {
	policy, err := entity.ResolvePolicy(tier)
	if err != nil {
		return "", err
	}

	chunks, err := Chunk(text, s.cfg.ChunkSize)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", nil
	}

	slog.InfoContext(ctx, "Starting summary assembly",
		slog.Int("chunks", len(chunks)),
		slog.String("tier", string(tier)),
		slog.Int("max_len", policy.MaxLen),
		slog.Int("min_len", policy.MinLen))

	summaries, err := s.summarizeChunks(ctx, chunks, policy)
	if err != nil {
		slog.ErrorContext(ctx, "Summary assembly failed",
			slog.Int("chunks", len(chunks)),
			slog.Any("error", err))
		return "", err
	}

	assembled := strings.Join(summaries, " ")

	slog.InfoContext(ctx, "Summary assembly completed",
		slog.Int("chunks", len(chunks)),
		slog.Int("summary_bytes", len(assembled)))

	return assembled, nil
}

// summarizeChunks feeds each chunk to the provider and collects results
// indexed by chunk position, so output order equals input order even when
// calls are dispatched concurrently.
func (s *Service) summarizeChunks(ctx context.Context, chunks []string, policy entity.LengthPolicy) ([]string, error) {
	summaries := make([]string, len(chunks))

	if s.cfg.Parallelism <= 1 {
		for i, chunk := range chunks {
			summary, err := s.provider.Summarize(ctx, chunk, policy.MaxLen, policy.MinLen)
			if err != nil {
				return nil, &ChunkError{Index: i, Total: len(chunks), Err: err}
			}
			summaries[i] = summary
		}
		return summaries, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Parallelism)
	for i, chunk := range chunks {
		eg.Go(func() error {
			summary, err := s.provider.Summarize(egCtx, chunk, policy.MaxLen, policy.MinLen)
			if err != nil {
				return &ChunkError{Index: i, Total: len(chunks), Err: err}
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GenerateNotes summarizes text and renders the result as study-note bullets.
//
// Returns:
//   - entity.StudyNotes with the assembled summary and its bullet lines
//   - error on policy, chunking, or provider failure (same semantics as Summarize)
func (s *Service) GenerateNotes(ctx context.Context, text string, tier entity.Tier) (entity.StudyNotes, error) {
	summary, err := s.Summarize(ctx, text, tier)
	if err != nil {
		return entity.StudyNotes{}, err
	}
	return entity.StudyNotes{
		Summary: summary,
		Bullets: ToBullets(summary),
	}, nil
}

// Export writes the summary payload to w verbatim. The export artifact is
// plain text, byte-for-byte equal to the assembled summary; naming
// (entity.ExportFileName) and MIME type are the caller's concern.
func (s *Service) Export(w io.Writer, summary string) error {
	if _, err := io.WriteString(w, summary); err != nil {
		return fmt.Errorf("write export payload: %w", err)
	}
	return nil
}
