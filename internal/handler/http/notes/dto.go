// Package notes provides HTTP handlers for the summarization endpoints.
// It includes handlers for generating summaries, rendering study notes,
// exporting the notes artifact, and extracting text from uploaded documents.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"studynotes/internal/domain/entity"
	"studynotes/internal/handler/http/respond"
	extractUC "studynotes/internal/usecase/extract"
	notesUC "studynotes/internal/usecase/notes"
)

// SummarizeRequest is the JSON body for summary generation endpoints.
type SummarizeRequest struct {
	Text string `json:"text"`
	Tier string `json:"tier"`
}

// SummarizeResponse carries the assembled summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
	Tier    string `json:"tier"`
}

// NotesResponse carries the assembled summary and its bullet rendering.
type NotesResponse struct {
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
	Tier    string   `json:"tier"`
}

// ExportRequest is the JSON body for the export endpoint.
type ExportRequest struct {
	Summary string `json:"summary"`
}

// ExtractResponse carries text extracted from an uploaded document.
type ExtractResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages,omitempty"`
	Words int    `json:"words"`
}

// statusFor maps pipeline errors to HTTP status codes. Input and tier
// problems are the client's fault; a failed provider call is an upstream
// failure; an unreadable document is unprocessable but recoverable.
func statusFor(err error) int {
	var chunkErr *notesUC.ChunkError
	switch {
	case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, entity.ErrUnknownTier):
		return http.StatusBadRequest
	case errors.Is(err, extractUC.ErrNoText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &chunkErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondPipelineError writes the error response for a failed pipeline call.
// A provider failure reports which chunk failed so the client can see the
// request was partially processed, but the underlying provider error stays
// in the logs only.
func respondPipelineError(ctx context.Context, w http.ResponseWriter, err error) {
	var chunkErr *notesUC.ChunkError
	if errors.As(err, &chunkErr) {
		slog.ErrorContext(ctx, "chunk summarization failed",
			slog.Int("chunk", chunkErr.Index),
			slog.Int("total", chunkErr.Total),
			slog.String("error", respond.SanitizeError(chunkErr.Err)))
		respond.JSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("summarization failed at chunk %d of %d", chunkErr.Index, chunkErr.Total),
		})
		return
	}
	respond.SafeError(w, statusFor(err), err)
}

// parseTier resolves the requested tier, defaulting to Medium when absent.
func parseTier(s string) (entity.Tier, error) {
	if s == "" {
		return entity.TierMedium, nil
	}
	return entity.ParseTier(s)
}
