package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

type ScheduleHandler struct {
	taskRepo repository.TaskRepository
}

func NewScheduleHandler(taskRepo repository.TaskRepository) *ScheduleHandler {
	return &ScheduleHandler{taskRepo: taskRepo}
}

func (handler *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.TaskFilter{
		DateFrom: r.URL.Query().Get("from"),
		DateTo:   r.URL.Query().Get("to"),
	}
	if pillar := r.URL.Query().Get("pillar"); pillar != "" {
		p := models.Pillar(pillar)
		filter.Pillar = &p
	}
	if done := r.URL.Query().Get("done"); done != "" {
		d := done == "true"
		filter.Done = &d
	}

	tasks, err := handler.taskRepo.FindByClient(r.Context(), chi.URLParam(r, "id"), filter)
	if err != nil {
		slog.Error("listing tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type taskRequest struct {
	Date     string        `json:"date"`
	Pillar   models.Pillar `json:"pillar"`
	Category string        `json:"category"`
	Title    string        `json:"title"`
	Points   int           `json:"points"`
	Notes    string        `json:"notes"`
	Done     *bool         `json:"done"`
}

func (handler *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request taskRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Date == "" || request.Title == "" {
		writeError(w, http.StatusBadRequest, "date and title are required")
		return
	}
	if !request.Pillar.Valid() {
		writeError(w, http.StatusBadRequest, "invalid pillar "+string(request.Pillar))
		return
	}
	if request.Points < 0 {
		writeError(w, http.StatusBadRequest, "points must be non-negative")
		return
	}

	task, err := handler.taskRepo.Create(r.Context(), models.ScheduledTask{
		ClientID: chi.URLParam(r, "id"),
		Date:     request.Date,
		Pillar:   request.Pillar,
		Category: request.Category,
		Title:    request.Title,
		Points:   request.Points,
		Notes:    request.Notes,
	})
	if err != nil {
		slog.Error("creating task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// Update applies partial changes; only fields present in the payload
// change, which is how the task list moves dates and toggles done.
func (handler *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	task, err := handler.taskRepo.FindByID(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	var request taskRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Date != "" {
		task.Date = request.Date
	}
	if request.Pillar != "" {
		if !request.Pillar.Valid() {
			writeError(w, http.StatusBadRequest, "invalid pillar "+string(request.Pillar))
			return
		}
		task.Pillar = request.Pillar
	}
	if request.Category != "" {
		task.Category = request.Category
	}
	if request.Title != "" {
		task.Title = request.Title
	}
	if request.Points > 0 {
		task.Points = request.Points
	}
	if request.Notes != "" {
		task.Notes = request.Notes
	}
	if request.Done != nil {
		task.Done = *request.Done
	}

	if err := handler.taskRepo.Update(ctx, task); err != nil {
		slog.Error("updating task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (handler *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.taskRepo.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		slog.Error("deleting task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Parse runs the schedule text parser over the extracted text layer of
// an uploaded workout PDF and returns the detected days for preview.
// Zero matches is a valid response, not an error: the dashboard prompts
// the coach to check the document type.
func (handler *ScheduleHandler) Parse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload")
		return
	}

	tasks := services.ParseSchedule(string(body), time.Now())
	writeJSON(w, http.StatusOK, tasks)
}

// BulkCreate persists a confirmed parsed schedule in one transaction.
func (handler *ScheduleHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	var requests []taskRequest
	if err := decodeJSON(r, &requests); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tasks := make([]models.ScheduledTask, 0, len(requests))
	for _, request := range requests {
		if request.Date == "" || request.Title == "" {
			writeError(w, http.StatusBadRequest, "date and title are required")
			return
		}
		if !request.Pillar.Valid() {
			writeError(w, http.StatusBadRequest, "invalid pillar "+string(request.Pillar))
			return
		}
		tasks = append(tasks, models.ScheduledTask{
			ClientID: clientID,
			Date:     request.Date,
			Pillar:   request.Pillar,
			Category: request.Category,
			Title:    request.Title,
			Points:   request.Points,
			Notes:    request.Notes,
		})
	}

	created, err := handler.taskRepo.CreateBatch(r.Context(), tasks)
	if err != nil {
		slog.Error("bulk creating tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to import schedule")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
