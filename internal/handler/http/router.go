package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stafflog/attendance-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	gatherer prometheus.Gatherer,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.ClientBaseURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method("GET", "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", employeeHandler.GetEmployee)
			r.Patch("/", employeeHandler.UpdateEmployee)
			r.Delete("/", employeeHandler.DeleteEmployee)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.ListAttendance)
		r.Post("/", attendanceHandler.CreateAttendance)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", attendanceHandler.GetAttendance)
			r.Patch("/", attendanceHandler.UpdateAttendance)
			r.Delete("/", attendanceHandler.DeleteAttendance)
		})
	})

	r.Get("/dashboard/stats", dashboardHandler.GetStats)
	r.Get("/present-days", dashboardHandler.ListPresentDays)

	return r
}
