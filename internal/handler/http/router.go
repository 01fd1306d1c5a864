package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	frontendURL string,
	dashboardHandler DashboardHandler,
	dutyHandler DutyHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
	pageHandler PageHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "duty-dashboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/dashboard", pageHandler.Dashboard)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetDashboard)
			r.Get("/daily-activity", dashboardHandler.GetDailyActivity)
			r.Get("/hourly-pattern", dashboardHandler.GetHourlyPattern)
			r.Get("/weekday-activity", dashboardHandler.GetWeekdayActivity)
			r.Get("/work-hours", dashboardHandler.GetWorkHours)
		})

		r.Get("/events", dutyHandler.ListEvents)
		r.Get("/sessions", dutyHandler.ListSessions)
		r.Get("/exports/events.csv", dutyHandler.ExportEventsCSV)

		r.Route("/snapshot", func(r chi.Router) {
			r.Get("/", dutyHandler.GetSnapshot)
			r.Post("/refresh", dutyHandler.RefreshSnapshot)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/schedule", employeeHandler.GetSchedule)
				r.Get("/schedule.csv", employeeHandler.GetScheduleCSV)
				r.Get("/insights", employeeHandler.GetInsights)
			})
		})

		r.Post("/reports/generate", reportHandler.Generate)
	})
	return r
}
