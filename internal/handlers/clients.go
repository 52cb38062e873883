package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/middleware"
	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
)

type ClientHandler struct {
	clientRepo repository.ClientRepository
	baseURL    string
}

func NewClientHandler(clientRepo repository.ClientRepository, baseURL string) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo, baseURL: baseURL}
}

type clientRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	CoachNote string `json:"coach_note"`
	Phase     int    `json:"phase"`
	StartDate string `json:"start_date"`
}

func (handler *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := handler.clientRepo.FindAll(r.Context())
	if err != nil {
		slog.Error("listing clients", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (handler *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request clientRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	client, err := handler.clientRepo.Create(r.Context(), models.Client{
		Name:      request.Name,
		Title:     request.Title,
		CoachNote: request.CoachNote,
		Phase:     request.Phase,
		StartDate: request.StartDate,
	})
	if err != nil {
		slog.Error("creating client", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create client")
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (handler *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := handler.clientRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (handler *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client, err := handler.clientRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	var request clientRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Name != "" {
		client.Name = request.Name
	}
	client.Title = request.Title
	client.CoachNote = request.CoachNote
	if request.Phase > 0 {
		client.Phase = request.Phase
	}
	client.StartDate = request.StartDate

	if err := handler.clientRepo.Update(ctx, client); err != nil {
		slog.Error("updating client", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (handler *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.clientRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting client", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ShareInfo returns the links a coach hands to a client: the portal
// view and its calendar feed.
func (handler *ClientHandler) ShareInfo(w http.ResponseWriter, r *http.Request) {
	client, err := handler.clientRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"share_url":    handler.baseURL + "/share/" + client.ShareToken,
		"calendar_url": handler.baseURL + "/share/" + client.ShareToken + "/calendar.ics",
	})
}

// Shared serves the read-only client view behind a share token. The
// share token itself is stripped so the payload can be re-shared
// safely.
func (handler *ClientHandler) Shared(w http.ResponseWriter, r *http.Request) {
	client := middleware.GetClient(r.Context())
	client.ShareToken = ""
	writeJSON(w, http.StatusOK, client)
}
