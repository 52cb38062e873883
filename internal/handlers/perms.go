package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

type PERMSHandler struct {
	permsRepo repository.PERMSRepository
}

func NewPERMSHandler(permsRepo repository.PERMSRepository) *PERMSHandler {
	return &PERMSHandler{permsRepo: permsRepo}
}

type permsEntryResponse struct {
	models.PERMSEntry
	Average float64
}

func (handler *PERMSHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := handler.permsRepo.FindByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("listing perms history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load assessments")
		return
	}

	response := make([]permsEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, permsEntryResponse{
			PERMSEntry: entry,
			Average:    services.PERMSAverage(entry.Scores),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

type permsRequest struct {
	Quarter    string             `json:"quarter"`
	AssessedAt string             `json:"assessed_at"`
	Scores     models.PERMSScores `json:"scores"`
}

func (handler *PERMSHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var request permsRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Quarter == "" {
		writeError(w, http.StatusBadRequest, "quarter is required")
		return
	}

	entry := models.PERMSEntry{
		ClientID:   chi.URLParam(r, "id"),
		Quarter:    request.Quarter,
		AssessedAt: request.AssessedAt,
		Scores:     request.Scores,
	}
	if err := handler.permsRepo.Upsert(r.Context(), entry); err != nil {
		slog.Error("upserting perms entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save assessment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *PERMSHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.permsRepo.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		slog.Error("deleting perms entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete assessment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
