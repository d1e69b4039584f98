package notes

import (
	"net/http"

	extractUC "studynotes/internal/usecase/extract"
	notesUC "studynotes/internal/usecase/notes"
)

// Register registers the summarization and extraction endpoints with the mux.
func Register(mux *http.ServeMux, notesSvc *notesUC.Service, extractSvc *extractUC.Service) {
	mux.Handle("POST /summarize", SummarizeHandler{Svc: notesSvc})
	mux.Handle("POST /notes", GenerateHandler{Svc: notesSvc})
	mux.Handle("POST /notes/export", ExportHandler{Svc: notesSvc})
	mux.Handle("POST /extract", ExtractHandler{Svc: extractSvc})
}
