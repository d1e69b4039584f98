package notes

import (
	"encoding/json"
	"net/http"

	"studynotes/internal/handler/http/respond"
	notesUC "studynotes/internal/usecase/notes"
)

// GenerateHandler serves POST /notes: summary plus bullet rendering.
type GenerateHandler struct{ Svc *notesUC.Service }

func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	studyNotes, err := h.Svc.GenerateNotes(r.Context(), req.Text, tier)
	if err != nil {
		respondPipelineError(r.Context(), w, err)
		return
	}

	respond.JSON(w, http.StatusOK, NotesResponse{
		Summary: studyNotes.Summary,
		Bullets: studyNotes.Bullets,
		Tier:    string(tier),
	})
}
