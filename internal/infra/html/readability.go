// Package html extracts readable article text from HTML documents using the
// Mozilla Readability algorithm, falling back to a plain DOM text walk when
// Readability finds no article structure to work with.
package html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// maxDocumentSize caps the HTML we are willing to buffer (10MB).
const maxDocumentSize = 10 << 20

// Extractor implements extract.HTMLExtractor.
type Extractor struct{}

// NewExtractor creates an HTML text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the readable text of an HTML document. Readability is
// tried first; when it yields nothing (fragments, non-article pages) the
// document body text is used instead.
func (e *Extractor) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("read html document: %w", err)
	}
	if len(htmlBytes) > maxDocumentSize {
		return "", fmt.Errorf("html document exceeds %d bytes", maxDocumentSize)
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), nil)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}
	if err != nil {
		slog.DebugContext(ctx, "Readability extraction failed, falling back to body text",
			slog.String("error", err.Error()))
	}

	return bodyText(htmlBytes)
}

// bodyText strips script and style elements and returns the remaining
// document text.
func bodyText(htmlBytes []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	if len(parts) == 0 {
		parts = append(parts, doc.Text())
	}

	return strings.Join(parts, "\n"), nil
}
