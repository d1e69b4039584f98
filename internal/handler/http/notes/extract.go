package notes

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"studynotes/internal/handler/http/respond"
	extractUC "studynotes/internal/usecase/extract"
)

// maxUploadBytes caps document uploads at 32MB.
const maxUploadBytes = 32 << 20

// ExtractHandler serves POST /extract: it accepts a multipart document upload
// (PDF or HTML) and returns the extracted plain text ready for summarization.
type ExtractHandler struct{ Svc *extractUC.Service }

func (h ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("file field is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	var result extractUC.Result
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf":
		result, err = h.Svc.FromPDF(r.Context(), file, header.Size)
	case ".html", ".htm":
		result, err = h.Svc.FromHTML(r.Context(), file)
	default:
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("unsupported file type: only .pdf and .html are accepted"))
		return
	}
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, ExtractResponse{
		Text:  result.Text,
		Pages: result.Pages,
		Words: result.Words,
	})
}
