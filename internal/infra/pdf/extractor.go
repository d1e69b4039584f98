// Package pdf extracts plain text from PDF documents page by page.
package pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// Extractor implements extract.PageExtractor on top of ledongthuc/pdf.
type Extractor struct{}

// NewExtractor creates a PDF page extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages parses the PDF and returns the plain text of each page in
// page order. Pages without extractable text are returned as empty strings
// so the caller keeps an accurate page count.
func (e *Extractor) ExtractPages(ctx context.Context, r io.ReaderAt, size int64) (pages []string, err error) {
	// The parser panics on some malformed cross-reference tables instead of
	// returning an error; convert that into a normal error.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.WarnContext(ctx, "Failed to extract text from PDF page",
				slog.Int("page", i),
				slog.String("error", err.Error()))
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return pages, nil
}
