package controllers

import (
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/greenloopdev/wastetrack-backend/api/responses"
	"github.com/greenloopdev/wastetrack-backend/pkg/config"
	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
	"github.com/greenloopdev/wastetrack-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WasteTrack-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the backing stores are reachable. A nil pinger means
// the dependency is not part of this deployment (memory driver skips the DB).
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WasteTrack-Env", cfg.App.Env)

		var errs error
		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("database: %w", err))
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("redis: %w", err))
			}
		}

		if errs != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "dependencies unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
