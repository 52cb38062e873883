package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

type AnalyticsHandler struct {
	clientRepo repository.ClientRepository
	taskRepo   repository.TaskRepository
	pointsRepo repository.WeeklyPointsRepository
}

func NewAnalyticsHandler(
	clientRepo repository.ClientRepository,
	taskRepo repository.TaskRepository,
	pointsRepo repository.WeeklyPointsRepository,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		clientRepo: clientRepo,
		taskRepo:   taskRepo,
		pointsRepo: pointsRepo,
	}
}

type analyticsResponse struct {
	Compliance    *models.ComplianceSummary
	Momentum      *models.MomentumResult
	AllTimePoints int
	RecentPoints  int
	WeekCount     int
}

// Summary assembles the overview statistics: compliance against the
// client's program start date, the four-week momentum trend, and point
// totals. Compliance and Momentum are null when there is not enough
// history; the dashboard renders those as "no data", not as errors.
func (handler *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := chi.URLParam(r, "id")

	client, err := handler.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	// The task horizon mirrors the dashboard: one year back, one ahead.
	now := time.Now()
	tasks, err := handler.taskRepo.FindByClient(ctx, clientID, repository.TaskFilter{
		DateFrom: services.DateKey(now.AddDate(-1, 0, 0)),
		DateTo:   services.DateKey(now.AddDate(1, 0, 0)),
	})
	if err != nil {
		slog.Error("loading tasks for analytics", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}

	tasksByDate := make(map[string][]models.ScheduledTask)
	for _, task := range tasks {
		tasksByDate[task.Date] = append(tasksByDate[task.Date], task)
	}

	points, err := handler.pointsRepo.FindByClient(ctx, clientID)
	if err != nil {
		slog.Error("loading points for analytics", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load points")
		return
	}

	response := analyticsResponse{
		Compliance: services.CalcCompliance(tasksByDate, client.StartDate),
		Momentum:   services.CalcMomentum(points),
		WeekCount:  len(points),
	}
	for _, record := range points {
		response.AllTimePoints += record.Total()
	}
	recent := points
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	for _, record := range recent {
		response.RecentPoints += record.Total()
	}

	writeJSON(w, http.StatusOK, response)
}
