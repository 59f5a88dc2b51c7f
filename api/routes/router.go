package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenloopdev/wastetrack-backend/api/controllers"
	"github.com/greenloopdev/wastetrack-backend/api/middleware"
	"github.com/greenloopdev/wastetrack-backend/internal/auth"
	"github.com/greenloopdev/wastetrack-backend/internal/bins"
	"github.com/greenloopdev/wastetrack-backend/internal/complaints"
	"github.com/greenloopdev/wastetrack-backend/internal/schedules"
	"github.com/greenloopdev/wastetrack-backend/internal/users"
	"github.com/greenloopdev/wastetrack-backend/pkg/auth/session"
	"github.com/greenloopdev/wastetrack-backend/pkg/config"
	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
	"github.com/greenloopdev/wastetrack-backend/pkg/metrics"
	"github.com/greenloopdev/wastetrack-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Revoke(context.Context, string) error
}

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager sessionManager
	Registry       *prometheus.Registry
	HTTPMetrics    *metrics.HTTPMetrics

	AuthService      auth.Service
	UserService      users.Service
	BinService       bins.Service
	ComplaintService complaints.Service
	ScheduleService  schedules.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.SessionManager, cfg.JWT, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).Get("/me", controllers.AuthMe(logg))
	})

	// The bin map is public; everything else requires a token.
	r.Get("/api/bins", controllers.BinList(deps.BinService, logg))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))

		r.Route("/bins", func(r chi.Router) {
			r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
				Post("/", controllers.BinCreate(deps.BinService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
				Delete("/{binId}", controllers.BinDelete(deps.BinService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
				Post("/{binId}/full", controllers.BinMarkFull(deps.BinService, logg))
		})

		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", controllers.ComplaintList(deps.ComplaintService, logg))
			r.Post("/", controllers.ComplaintCreate(deps.ComplaintService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
				Put("/{complaintId}", controllers.ComplaintUpdateStatus(deps.ComplaintService, logg))
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", controllers.ScheduleList(deps.ScheduleService, logg))
			r.Post("/", controllers.ScheduleCreate(deps.ScheduleService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
				Put("/{scheduleId}", controllers.ScheduleUpdateStatus(deps.ScheduleService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleAdmin)).
				Post("/{scheduleId}/assign", controllers.ScheduleAssignWorker(deps.ScheduleService, logg))
		})

		r.With(middleware.RequireRole(logg, enums.RoleWorker, enums.RoleAdmin)).
			Get("/workers", controllers.WorkerList(deps.UserService, logg))
	})

	return r
}
