package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// ListProjects serves the public portfolio.
func ListProjects(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := d.Store.ListProjects(r.Context())
		if err != nil {
			d.Logger.Error("failed to list projects", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve projects")
			return
		}
		respondOK(w, projects)
	}
}

// CreateProject stores a new portfolio project (admin).
func CreateProject(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.Project
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Title == "" || body.Description == "" || body.Image == "" || body.Tags == nil {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if !body.Status.Valid() {
			respondErr(w, http.StatusBadRequest, "Invalid project status")
			return
		}

		project, err := d.Store.AddProject(r.Context(), body)
		if err != nil {
			d.Logger.Error("failed to create project", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create project")
			return
		}
		respondCreated(w, project)
	}
}

// UpdateProject applies a partial update (admin).
func UpdateProject(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.ProjectPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if patch.Status != nil && !patch.Status.Valid() {
			respondErr(w, http.StatusBadRequest, "Invalid project status")
			return
		}

		project, err := d.Store.UpdateProject(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update project", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update project")
			return
		}
		if project == nil {
			respondErr(w, http.StatusNotFound, "Project not found")
			return
		}
		respondOK(w, project)
	}
}

// DeleteProject removes a project (admin).
func DeleteProject(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteProject(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete project", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete project")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Project not found")
			return
		}
		respondOK(w, nil)
	}
}
