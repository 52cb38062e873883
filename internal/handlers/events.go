package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
)

type EventHandler struct {
	eventRepo repository.EventRepository
}

func NewEventHandler(eventRepo repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

func (handler *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := handler.eventRepo.FindByClient(
		r.Context(), chi.URLParam(r, "id"),
		r.URL.Query().Get("from"), r.URL.Query().Get("to"),
	)
	if err != nil {
		slog.Error("listing events", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type eventRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Notes string `json:"notes"`
}

func (handler *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request eventRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Date == "" || request.Title == "" {
		writeError(w, http.StatusBadRequest, "date and title are required")
		return
	}

	event, err := handler.eventRepo.Create(r.Context(), models.Event{
		ClientID: chi.URLParam(r, "id"),
		Date:     request.Date,
		Title:    request.Title,
		Notes:    request.Notes,
	})
	if err != nil {
		slog.Error("creating event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (handler *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request eventRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Date == "" || request.Title == "" {
		writeError(w, http.StatusBadRequest, "date and title are required")
		return
	}

	event := models.Event{
		ID:    chi.URLParam(r, "eventID"),
		Date:  request.Date,
		Title: request.Title,
		Notes: request.Notes,
	}
	if err := handler.eventRepo.Update(r.Context(), event); err != nil {
		slog.Error("updating event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (handler *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.eventRepo.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		slog.Error("deleting event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
