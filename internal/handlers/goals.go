package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
)

type GoalHandler struct {
	goalRepo repository.GoalRepository
}

func NewGoalHandler(goalRepo repository.GoalRepository) *GoalHandler {
	return &GoalHandler{goalRepo: goalRepo}
}

func (handler *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := handler.goalRepo.FindByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("listing goals", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

type goalRequest struct {
	Pillar      models.Pillar       `json:"pillar"`
	Goal        string              `json:"goal"`
	TargetDate  string              `json:"target_date"`
	ActionItems []models.ActionItem `json:"action_items"`
}

// Replace swaps the client's full goal list, matching the dashboard's
// save-all edit flow.
func (handler *GoalHandler) Replace(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	var requests []goalRequest
	if err := decodeJSON(r, &requests); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goals := make([]models.Goal, 0, len(requests))
	for _, request := range requests {
		if !request.Pillar.Valid() {
			writeError(w, http.StatusBadRequest, "invalid pillar "+string(request.Pillar))
			return
		}
		goals = append(goals, models.Goal{
			ClientID:    clientID,
			Pillar:      request.Pillar,
			Goal:        request.Goal,
			TargetDate:  request.TargetDate,
			ActionItems: request.ActionItems,
		})
	}

	if err := handler.goalRepo.ReplaceAll(r.Context(), clientID, goals); err != nil {
		slog.Error("replacing goals", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save goals")
		return
	}

	saved, err := handler.goalRepo.FindByClient(r.Context(), clientID)
	if err != nil {
		slog.Error("reloading goals", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
