package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPageExtractor struct {
	pages []string
	err   error
}

func (s stubPageExtractor) ExtractPages(_ context.Context, _ io.ReaderAt, _ int64) ([]string, error) {
	return s.pages, s.err
}

type stubHTMLExtractor struct {
	text string
	err  error
}

func (s stubHTMLExtractor) ExtractText(_ context.Context, _ io.Reader) (string, error) {
	return s.text, s.err
}

func TestService_FromPDF(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		wantText string
		wantErr  error
	}{
		{
			name:     "pages joined with newline",
			pages:    []string{"page one", "page two", "page three"},
			wantText: "page one\npage two\npage three",
		},
		{
			name:     "empty pages skipped",
			pages:    []string{"page one", "", "page three"},
			wantText: "page one\npage three",
		},
		{
			name:     "result trimmed",
			pages:    []string{"  page one  "},
			wantText: "page one",
		},
		{
			name:    "all pages empty",
			pages:   []string{"", "", ""},
			wantErr: ErrNoText,
		},
		{
			name:    "no pages",
			pages:   []string{},
			wantErr: ErrNoText,
		},
		{
			name:    "whitespace-only pages",
			pages:   []string{"   ", "\n\t"},
			wantErr: ErrNoText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(stubPageExtractor{pages: tt.pages}, nil)

			got, err := svc.FromPDF(context.Background(), bytes.NewReader(nil), 0)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, len(tt.pages), got.Pages)
			assert.Equal(t, len(strings.Fields(tt.wantText)), got.Words)
		})
	}
}

func TestService_FromPDF_ExtractorError(t *testing.T) {
	svc := NewService(stubPageExtractor{err: errors.New("broken xref table")}, nil)

	_, err := svc.FromPDF(context.Background(), bytes.NewReader(nil), 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken xref table")
	assert.False(t, errors.Is(err, ErrNoText))
}

func TestService_FromPDF_NotConfigured(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.FromPDF(context.Background(), bytes.NewReader(nil), 0)

	require.Error(t, err)
}

func TestService_FromHTML(t *testing.T) {
	t.Run("readable text returned trimmed", func(t *testing.T) {
		svc := NewService(nil, stubHTMLExtractor{text: "  article body text \n"})

		got, err := svc.FromHTML(context.Background(), strings.NewReader("<html></html>"))

		require.NoError(t, err)
		assert.Equal(t, "article body text", got.Text)
		assert.Equal(t, 3, got.Words)
	})

	t.Run("empty extraction is ErrNoText", func(t *testing.T) {
		svc := NewService(nil, stubHTMLExtractor{text: "  \n "})

		_, err := svc.FromHTML(context.Background(), strings.NewReader("<html></html>"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoText))
	})

	t.Run("extractor error wrapped", func(t *testing.T) {
		svc := NewService(nil, stubHTMLExtractor{err: errors.New("malformed markup")})

		_, err := svc.FromHTML(context.Background(), strings.NewReader("<html>"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed markup")
	})
}
