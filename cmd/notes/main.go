// Package main provides a CLI command for generating study notes from text or PDF files.
// Usage: notes [--file input.txt | --pdf slides.pdf] [--tier short|medium|detailed] [--bullets] [--o output.txt]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"studynotes/internal/domain/entity"
	pdfinfra "studynotes/internal/infra/pdf"
	"studynotes/internal/infra/summarizer"
	"studynotes/internal/observability/logging"
	extractUC "studynotes/internal/usecase/extract"
	notesUC "studynotes/internal/usecase/notes"
)

func main() {
	var (
		textFile   string
		pdfFile    string
		tierName   string
		bullets    bool
		outputPath string
	)

	flag.StringVar(&textFile, "file", "", "Path to a plain-text input file (default: stdin)")
	flag.StringVar(&pdfFile, "pdf", "", "Path to a PDF input file")
	flag.StringVar(&tierName, "tier", "medium", "Summary length tier: short, medium, or detailed")
	flag.BoolVar(&bullets, "bullets", false, "Render the summary as study-note bullets")
	flag.StringVar(&outputPath, "o", "", "Write output to this file instead of stdout")
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	tier, err := entity.ParseTier(tierName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid tier '%s' (must be one of: %s)\n",
			tierName, tierList())
		os.Exit(1)
	}

	text, err := readInput(textFile, pdfFile)
	if err != nil {
		logger.Error("failed to read input", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider, err := summarizer.Default()
	if err != nil {
		logger.Error("failed to create summarization provider", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := notesUC.NewService(provider, notesUC.Config{})

	ctx := context.Background()
	output, err := generate(ctx, svc, text, tier, bullets)
	if err != nil {
		logger.Error("summarization failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(outputPath, output); err != nil {
		logger.Error("failed to write output", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generate runs the pipeline and renders the requested output form.
func generate(ctx context.Context, svc *notesUC.Service, text string, tier entity.Tier, bullets bool) (string, error) {
	if bullets {
		studyNotes, err := svc.GenerateNotes(ctx, text, tier)
		if err != nil {
			return "", err
		}
		return strings.Join(studyNotes.Bullets, "\n"), nil
	}
	return svc.Summarize(ctx, text, tier)
}

// readInput loads the source text from a PDF, a text file, or stdin.
func readInput(textFile, pdfFile string) (string, error) {
	if pdfFile != "" {
		return readPDF(pdfFile)
	}

	if textFile != "" {
		data, err := os.ReadFile(textFile) // #nosec G304 -- path comes from the CLI user
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// readPDF extracts text from the PDF at path.
func readPDF(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat pdf: %w", err)
	}

	svc := extractUC.NewService(pdfinfra.NewExtractor(), nil)
	result, err := svc.FromPDF(context.Background(), f, info.Size())
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// writeOutput writes the generated text to a file or stdout.
func writeOutput(path, output string) error {
	if path == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// tierList formats the valid tiers for usage messages.
func tierList() string {
	tiers := entity.Tiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = strings.ToLower(string(t))
	}
	return strings.Join(names, ", ")
}
