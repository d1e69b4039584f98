package notes

import (
	"encoding/json"
	"net/http"

	"studynotes/internal/handler/http/respond"
	notesUC "studynotes/internal/usecase/notes"
)

// SummarizeHandler serves POST /summarize: it runs the chunked summarization
// pipeline and returns the assembled summary as JSON.
type SummarizeHandler struct{ Svc *notesUC.Service }

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	tier, err := parseTier(req.Tier)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	summary, err := h.Svc.Summarize(r.Context(), req.Text, tier)
	if err != nil {
		respondPipelineError(r.Context(), w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SummarizeResponse{
		Summary: summary,
		Tier:    string(tier),
	})
}
