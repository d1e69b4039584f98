// Package extract turns uploaded documents (PDF, HTML) into the plain text
// consumed by the summarization pipeline. Extraction backends are external
// collaborators behind narrow interfaces; the pipeline only ever sees the
// final concatenated text string.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// PageExtractor reads a PDF byte stream and returns per-page extracted text
// in page order. Pages without extractable text may be returned as empty
// strings; they are skipped during concatenation.
type PageExtractor interface {
	ExtractPages(ctx context.Context, r io.ReaderAt, size int64) ([]string, error)
}

// HTMLExtractor pulls readable article text out of an HTML document.
type HTMLExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// Result carries the extracted text together with source statistics
// surfaced to callers (page count, word count).
type Result struct {
	Text  string
	Pages int
	Words int
}

// Service joins extraction backends into the single text string the
// pipeline consumes.
type Service struct {
	pdf  PageExtractor
	html HTMLExtractor
}

// NewService creates an extraction service. Either backend may be nil if the
// corresponding source type is not offered by the caller.
func NewService(pdf PageExtractor, html HTMLExtractor) *Service {
	return &Service{pdf: pdf, html: html}
}

// FromPDF extracts text from a PDF byte stream. Non-empty pages are joined
// with newline separators and the result is whitespace-trimmed.
//
// Returns ErrNoText when the document yields no extractable text. This is a
// recoverable, user-visible condition: the caller may still supply manual
// text instead.
func (s *Service) FromPDF(ctx context.Context, r io.ReaderAt, size int64) (Result, error) {
	if s.pdf == nil {
		return Result{}, fmt.Errorf("pdf extraction not configured")
	}

	pages, err := s.pdf.ExtractPages(ctx, r, size)
	if err != nil {
		return Result{}, fmt.Errorf("extract pdf pages: %w", err)
	}

	var b strings.Builder
	for _, page := range pages {
		if page == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(page)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		slog.WarnContext(ctx, "No extractable text found in PDF",
			slog.Int("pages", len(pages)))
		return Result{}, ErrNoText
	}

	result := Result{
		Text:  text,
		Pages: len(pages),
		Words: len(strings.Fields(text)),
	}

	slog.InfoContext(ctx, "PDF text extracted",
		slog.Int("pages", result.Pages),
		slog.Int("words", result.Words))

	return result, nil
}

// FromHTML extracts readable text from an HTML document, trimmed of
// surrounding whitespace. Returns ErrNoText when nothing readable remains.
func (s *Service) FromHTML(ctx context.Context, r io.Reader) (Result, error) {
	if s.html == nil {
		return Result{}, fmt.Errorf("html extraction not configured")
	}

	text, err := s.html.ExtractText(ctx, r)
	if err != nil {
		return Result{}, fmt.Errorf("extract html text: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrNoText
	}

	return Result{
		Text:  text,
		Words: len(strings.Fields(text)),
	}, nil
}
