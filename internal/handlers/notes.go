package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

type CoachNoteHandler struct {
	noteRepo repository.CoachNoteRepository
}

func NewCoachNoteHandler(noteRepo repository.CoachNoteRepository) *CoachNoteHandler {
	return &CoachNoteHandler{noteRepo: noteRepo}
}

func (handler *CoachNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := handler.noteRepo.FindByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("listing coach notes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load notes")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

type coachNoteRequest struct {
	WeekISO   string `json:"week_iso"`
	WeekLabel string `json:"week_label"`
	Note      string `json:"note"`
}

func (handler *CoachNoteHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var request coachNoteRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.WeekISO == "" || request.Note == "" {
		writeError(w, http.StatusBadRequest, "week_iso and note are required")
		return
	}
	if request.WeekLabel == "" {
		if label, err := services.WeekLabel(request.WeekISO); err == nil {
			request.WeekLabel = label
		}
	}

	note := models.CoachNote{
		ClientID:  chi.URLParam(r, "id"),
		WeekISO:   request.WeekISO,
		WeekLabel: request.WeekLabel,
		Note:      request.Note,
	}
	if err := handler.noteRepo.Upsert(r.Context(), note); err != nil {
		slog.Error("upserting coach note", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *CoachNoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.noteRepo.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
		slog.Error("deleting coach note", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
