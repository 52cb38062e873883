package handlers

import (
	"log/slog"
	"net/http"

	"github.com/kylerishisaki/APEXDashboard/internal/middleware"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

type CalendarHandler struct {
	taskRepo  repository.TaskRepository
	eventRepo repository.EventRepository
}

func NewCalendarHandler(taskRepo repository.TaskRepository, eventRepo repository.EventRepository) *CalendarHandler {
	return &CalendarHandler{taskRepo: taskRepo, eventRepo: eventRepo}
}

// Feed serves the shared client's schedule as an iCalendar file for
// the portal's "Add to Calendar" link. The share-token middleware has
// already resolved the client.
func (handler *CalendarHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := middleware.GetClient(ctx)

	tasks, err := handler.taskRepo.FindByClient(ctx, client.ID, repository.TaskFilter{})
	if err != nil {
		slog.Error("loading tasks for calendar feed", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	events, err := handler.eventRepo.FindByClient(ctx, client.ID, "", "")
	if err != nil {
		slog.Error("loading events for calendar feed", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=apex-schedule.ics")
	w.Write([]byte(services.BuildCalendarFeed(client, tasks, events)))
}
