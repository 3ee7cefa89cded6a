package handlers

import (
	"net/http"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// GetSettings serves the site settings singleton, falling back to the
// built-in defaults when nothing has been saved.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := d.Store.SiteSettings(r.Context())
		if err != nil {
			d.Logger.Error("failed to get site settings", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve site settings")
			return
		}
		respondOK(w, settings)
	}
}

// UpdateSettings replaces the settings singleton wholesale (admin).
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.SiteSettings
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := d.Store.PutSiteSettings(r.Context(), body); err != nil {
			d.Logger.Error("failed to update site settings", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update site settings")
			return
		}
		respondOK(w, nil)
	}
}

// GetStats serves the dashboard counters (admin).
func GetStats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := d.Store.Stats(r.Context())
		if err != nil {
			d.Logger.Error("failed to get dashboard stats", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
			return
		}
		respondOK(w, stats)
	}
}

// GetChatbotConfig serves the prompt and service catalogue consumed by
// the chat agent.
func GetChatbotConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := d.Store.ChatbotConfig(r.Context())
		if err != nil {
			d.Logger.Error("failed to get chatbot config", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve chatbot config")
			return
		}
		respondOK(w, cfg)
	}
}
