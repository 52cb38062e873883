package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kylerishisaki/APEXDashboard/internal/config"
	"github.com/kylerishisaki/APEXDashboard/internal/handlers"
	"github.com/kylerishisaki/APEXDashboard/internal/middleware"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config) *Server {
	clientRepo := repository.NewClientRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	permsRepo := repository.NewPERMSRepository(database)
	pointsRepo := repository.NewWeeklyPointsRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	eventRepo := repository.NewEventRepository(database)
	noteRepo := repository.NewCoachNoteRepository(database)

	clientHandler := handlers.NewClientHandler(clientRepo, cfg.BaseURL)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	permsHandler := handlers.NewPERMSHandler(permsRepo)
	pointsHandler := handlers.NewPointsHandler(pointsRepo)
	scheduleHandler := handlers.NewScheduleHandler(taskRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	noteHandler := handlers.NewCoachNoteHandler(noteRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(clientRepo, taskRepo, pointsRepo)
	calendarHandler := handlers.NewCalendarHandler(taskRepo, eventRepo)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api/clients", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", clientHandler.Get)
			r.Put("/", clientHandler.Update)
			r.Delete("/", clientHandler.Delete)
			r.Get("/share", clientHandler.ShareInfo)

			r.Get("/goals", goalHandler.List)
			r.Put("/goals", goalHandler.Replace)

			r.Get("/perms", permsHandler.List)
			r.Post("/perms", permsHandler.Upsert)
			r.Delete("/perms/{entryID}", permsHandler.Delete)

			r.Get("/points", pointsHandler.List)
			r.Post("/points", pointsHandler.Upsert)
			r.Delete("/points/{week}", pointsHandler.Delete)
			r.Post("/points/import", pointsHandler.Import)
			r.Get("/points/export", pointsHandler.Export)

			r.Get("/tasks", scheduleHandler.List)
			r.Post("/tasks", scheduleHandler.Create)
			r.Post("/tasks/bulk", scheduleHandler.BulkCreate)
			r.Patch("/tasks/{taskID}", scheduleHandler.Update)
			r.Delete("/tasks/{taskID}", scheduleHandler.Delete)
			r.Post("/schedule/parse", scheduleHandler.Parse)

			r.Get("/events", eventHandler.List)
			r.Post("/events", eventHandler.Create)
			r.Put("/events/{eventID}", eventHandler.Update)
			r.Delete("/events/{eventID}", eventHandler.Delete)

			r.Get("/notes", noteHandler.List)
			r.Post("/notes", noteHandler.Upsert)
			r.Delete("/notes/{noteID}", noteHandler.Delete)

			r.Get("/analytics", analyticsHandler.Summary)
		})
	})

	// Read-only client portal behind an opaque share token.
	router.Route("/share/{token}", func(r chi.Router) {
		r.Use(middleware.ShareToken(clientRepo))

		r.Get("/", clientHandler.Shared)
		r.Get("/calendar.ics", calendarHandler.Feed)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}

// Router exposes the mux for tests.
func (server *Server) Router() http.Handler {
	return server.router
}
