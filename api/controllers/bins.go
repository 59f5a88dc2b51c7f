package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/greenloopdev/wastetrack-backend/api/middleware"
	"github.com/greenloopdev/wastetrack-backend/api/responses"
	"github.com/greenloopdev/wastetrack-backend/api/validators"
	"github.com/greenloopdev/wastetrack-backend/internal/bins"
	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
)

func identityOrFail(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (pkgAuth.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
	}
	return identity, ok
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid id")
	}
	return id, nil
}

// BinList returns the active bins shown on the map.
func BinList(svc bins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bins service unavailable"))
			return
		}

		result, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// BinCreate registers a bin. Worker or admin only.
func BinCreate(svc bins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bins service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		var body bins.CreateBinInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), identity, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// BinDelete retires a bin from the map. Admin only.
func BinDelete(svc bins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bins service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := pathID(r, "binId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SoftDelete(r.Context(), identity, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}

// BinMarkFull flags a bin as needing collection. Worker or admin only.
func BinMarkFull(svc bins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bins service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := pathID(r, "binId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.MarkFull(r.Context(), identity, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
