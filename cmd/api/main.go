package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/greenloopdev/wastetrack-backend/api/routes"
	"github.com/greenloopdev/wastetrack-backend/internal/auth"
	"github.com/greenloopdev/wastetrack-backend/internal/bins"
	"github.com/greenloopdev/wastetrack-backend/internal/complaints"
	"github.com/greenloopdev/wastetrack-backend/internal/schedules"
	"github.com/greenloopdev/wastetrack-backend/internal/users"
	"github.com/greenloopdev/wastetrack-backend/pkg/auth/session"
	"github.com/greenloopdev/wastetrack-backend/pkg/config"
	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
	"github.com/greenloopdev/wastetrack-backend/pkg/metrics"
	"github.com/greenloopdev/wastetrack-backend/pkg/migrate"
	"github.com/greenloopdev/wastetrack-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		dbClient      *db.Client
		dbPinger      db.Pinger
		userRepo      users.Repository
		binRepo       bins.Repository
		complaintRepo complaints.Repository
		scheduleRepo  schedules.Repository
	)

	if cfg.DB.UsesSQL() {
		dbClient, err = db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()

		if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}

		dbPinger = dbClient
		userRepo = users.NewRepository(dbClient.DB())
		binRepo = bins.NewRepository(dbClient.DB())
		complaintRepo = complaints.NewRepository(dbClient.DB())
		scheduleRepo = schedules.NewRepository(dbClient.DB())
	} else {
		logg.Info(context.Background(), "using in-memory store; data will not survive restarts")
		userRepo = users.NewMemoryRepository()
		binRepo = bins.NewMemoryRepository()
		complaintRepo = complaints.NewMemoryRepository()
		scheduleRepo = schedules.NewMemoryRepository()
		if err := seedMemory(context.Background(), userRepo, binRepo); err != nil {
			logg.Error(context.Background(), "failed to seed in-memory store", err)
			os.Exit(1)
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	binService, err := bins.NewService(binRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create bins service", err)
		os.Exit(1)
	}

	complaintService, err := complaints.NewService(complaints.ServiceParams{
		Repo:  complaintRepo,
		Users: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create complaints service", err)
		os.Exit(1)
	}

	scheduleService, err := schedules.NewService(schedules.ServiceParams{
		Repo:  scheduleRepo,
		Users: userRepo,
		Bins:  binRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create schedules service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": cfg.DB.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			DB:               dbPinger,
			Redis:            redisClient,
			SessionManager:   sessionManager,
			Registry:         registry,
			HTTPMetrics:      httpMetrics,
			AuthService:      authService,
			UserService:      userService,
			BinService:       binService,
			ComplaintService: complaintService,
			ScheduleService:  scheduleService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
