package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/services"
)

// maxImportBytes caps uploaded CSV bodies.
const maxImportBytes = 4 << 20

type PointsHandler struct {
	pointsRepo repository.WeeklyPointsRepository
}

func NewPointsHandler(pointsRepo repository.WeeklyPointsRepository) *PointsHandler {
	return &PointsHandler{pointsRepo: pointsRepo}
}

// List returns a client's point records, aggregated when ?period= is
// monthly, quarterly or annual.
func (handler *PointsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := handler.pointsRepo.FindByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("listing weekly points", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load points")
		return
	}

	period := models.Period(r.URL.Query().Get("period"))
	writeJSON(w, http.StatusOK, services.AggregatePoints(records, period))
}

type weekRequest struct {
	Week    string `json:"week"`
	Label   string `json:"label"`
	Move    int    `json:"move"`
	Recover int    `json:"recover"`
	Fuel    int    `json:"fuel"`
	Connect int    `json:"connect"`
	Breathe int    `json:"breathe"`
	Misc    int    `json:"misc"`
}

func (request weekRequest) record() models.WeeklyPointRecord {
	return models.WeeklyPointRecord{
		Week: request.Week, Label: request.Label,
		Move: request.Move, Recover: request.Recover, Fuel: request.Fuel,
		Connect: request.Connect, Breathe: request.Breathe, Misc: request.Misc,
	}
}

// Upsert accepts one or more week records and writes them against the
// one-record-per-week-per-client key.
func (handler *PointsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var requests []weekRequest
	if err := decodeJSON(r, &requests); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	records := make([]models.WeeklyPointRecord, 0, len(requests))
	for _, request := range requests {
		if request.Week == "" {
			writeError(w, http.StatusBadRequest, "week is required")
			return
		}
		if request.Label == "" {
			if label, err := services.WeekLabel(request.Week); err == nil {
				request.Label = label
			}
		}
		records = append(records, request.record())
	}

	if err := handler.pointsRepo.Upsert(r.Context(), chi.URLParam(r, "id"), records); err != nil {
		slog.Error("upserting weekly points", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save points")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *PointsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := handler.pointsRepo.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "week"))
	if err != nil {
		slog.Error("deleting weekly points", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete week")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import parses an uploaded CSV (native or vendor export, sniffed) and
// returns the parsed weeks for preview. Nothing is persisted until the
// coach confirms via Upsert.
func (handler *PointsHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload")
		return
	}

	records, err := services.ImportPointsCSV(string(body))
	if err != nil {
		// Parse failures name the problem; surface them verbatim so the
		// coach can tell a wrong file from a broken one.
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Export serializes the client's weekly records to the native CSV
// interchange format.
func (handler *PointsHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := handler.pointsRepo.FindByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("exporting weekly points", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load points")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=weekly-points.csv")
	w.Write([]byte(services.WriteNativeCSV(records)))
}
