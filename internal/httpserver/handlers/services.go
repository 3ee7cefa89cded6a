package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// ListServices serves the public service catalogue.
func ListServices(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := d.Store.ListServices(r.Context())
		if err != nil {
			d.Logger.Error("failed to list services", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve services")
			return
		}
		respondOK(w, services)
	}
}

// CreateService stores a new service (admin).
func CreateService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.Service
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Title == "" || body.Description == "" || body.Icon == "" || body.Features == nil {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		service, err := d.Store.AddService(r.Context(), body)
		if err != nil {
			d.Logger.Error("failed to create service", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create service")
			return
		}
		respondCreated(w, service)
	}
}

// UpdateService applies a partial update (admin).
func UpdateService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.ServicePatch
		if err := decodeJSON(r, &patch); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		service, err := d.Store.UpdateService(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update service", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update service")
			return
		}
		if service == nil {
			respondErr(w, http.StatusNotFound, "Service not found")
			return
		}
		respondOK(w, service)
	}
}

// DeleteService removes a service (admin).
func DeleteService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteService(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete service", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete service")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Service not found")
			return
		}
		respondOK(w, nil)
	}
}
