package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/salonova/scheduling-backend-go/internal/config"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/middleware"
	"github.com/salonova/scheduling-backend-go/internal/pkg/jwt"
	"github.com/salonova/scheduling-backend-go/internal/pkg/metrics"
)

type RouterDeps struct {
	JWTService          jwt.Service
	Metrics             *metrics.Metrics
	AuthHandler         AuthHandler
	AvailabilityHandler AvailabilityHandler
	ScheduleHandler     ScheduleHandler
	TimeOffHandler      TimeOffHandler
	PerformanceHandler  PerformanceHandler
}

func NewRouter(cfg *config.Config, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salonova-scheduling"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
		r.Method("GET", "/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Get("/availability", deps.AvailabilityHandler.Resolve)
			r.Get("/utilization", deps.ScheduleHandler.GetSalonUtilization)

			r.Route("/staff/{staffID}", func(r chi.Router) {
				r.Get("/utilization", deps.ScheduleHandler.GetUtilization)
				r.Get("/performance", deps.PerformanceHandler.GetMetrics)

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", deps.ScheduleHandler.ListWeeklySchedules)
					r.Put("/", deps.ScheduleHandler.UpsertWeeklySchedules)
				})

				r.Route("/breaks", func(r chi.Router) {
					r.Get("/", deps.ScheduleHandler.ListBreaks)
					r.Post("/", deps.ScheduleHandler.CreateBreak)
				})
			})

			r.Route("/time-off", func(r chi.Router) {
				r.Get("/", deps.TimeOffHandler.ListRequests)
				r.Post("/", deps.TimeOffHandler.CreateRequest)
				r.Post("/{requestID}/approve", deps.TimeOffHandler.ApproveRequest)
				r.Post("/{requestID}/reject", deps.TimeOffHandler.RejectRequest)
			})
		})
	})
	return r
}
