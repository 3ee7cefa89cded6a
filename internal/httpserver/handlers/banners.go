package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// ListBanners serves banners, optionally only published ones.
func ListBanners(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("publishedOnly") == "true"

		banners, err := d.Store.ListBanners(r.Context(), publishedOnly)
		if err != nil {
			d.Logger.Error("failed to list banners", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve banners")
			return
		}
		respondOK(w, banners)
	}
}

// CreateBanner stores a new banner (admin).
func CreateBanner(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.Banner
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Title == "" || body.ImageURL == "" || body.Link == "" {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		banner, err := d.Store.AddBanner(r.Context(), body)
		if err != nil {
			d.Logger.Error("failed to create banner", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create banner")
			return
		}
		respondCreated(w, banner)
	}
}

// UpdateBanner applies a partial update (admin).
func UpdateBanner(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.BannerPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		banner, err := d.Store.UpdateBanner(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update banner", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update banner")
			return
		}
		if banner == nil {
			respondErr(w, http.StatusNotFound, "Banner not found")
			return
		}
		respondOK(w, banner)
	}
}

// DeleteBanner removes a banner (admin).
func DeleteBanner(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteBanner(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete banner", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete banner")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Banner not found")
			return
		}
		respondOK(w, nil)
	}
}
