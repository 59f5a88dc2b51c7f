package controllers

import (
	"net/http"

	"github.com/greenloopdev/wastetrack-backend/api/responses"
	"github.com/greenloopdev/wastetrack-backend/api/validators"
	"github.com/greenloopdev/wastetrack-backend/internal/schedules"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
)

// ScheduleList returns the schedules visible to the caller.
func ScheduleList(svc schedules.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "schedules service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		result, err := svc.List(r.Context(), identity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ScheduleCreate requests a pickup on behalf of the caller.
func ScheduleCreate(svc schedules.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "schedules service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		var body schedules.CreateScheduleInput
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

// ScheduleUpdateStatus moves a schedule through its lifecycle.
func ScheduleUpdateStatus(svc schedules.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "schedules service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := pathID(r, "scheduleId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body schedules.UpdateStatusInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateStatus(r.Context(), identity, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ScheduleAssignWorker hands a schedule to a worker. Admin only.
func ScheduleAssignWorker(svc schedules.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "schedules service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := pathID(r, "scheduleId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body schedules.AssignWorkerInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.AssignWorker(r.Context(), identity, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
