package controllers

import (
	"net/http"

	"github.com/greenloopdev/wastetrack-backend/api/responses"
	"github.com/greenloopdev/wastetrack-backend/api/validators"
	"github.com/greenloopdev/wastetrack-backend/internal/complaints"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
)

// ComplaintList returns the complaints visible to the caller.
func ComplaintList(svc complaints.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "complaints service unavailable"))
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

// ComplaintCreate files a complaint on behalf of the caller.
func ComplaintCreate(svc complaints.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "complaints service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		var body complaints.CreateComplaintInput
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

// ComplaintUpdateStatus moves a complaint through triage. Worker or admin only.
func ComplaintUpdateStatus(svc complaints.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "complaints service unavailable"))
			return
		}

		identity, ok := identityOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := pathID(r, "complaintId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body complaints.UpdateStatusInput
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
