package notes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"studynotes/internal/domain/entity"
	"studynotes/internal/handler/http/respond"
	notesUC "studynotes/internal/usecase/notes"
)

// ExportHandler serves POST /notes/export: it streams the summary back as a
// plain-text download. The body is byte-for-byte the submitted summary.
type ExportHandler struct{ Svc *notesUC.Service }

func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", entity.ExportMIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", entity.ExportFileName))
	w.WriteHeader(http.StatusOK)

	if err := h.Svc.Export(w, req.Summary); err != nil {
		// Headers are already sent; log and let the client see a short body.
		slog.ErrorContext(r.Context(), "Failed to write export payload",
			slog.Any("error", err))
	}
}
