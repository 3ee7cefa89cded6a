package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/utils"
)

// ChatProxy forwards conversation traffic to the external chat agent.
//
// The agent is addressed by session id; the /api/chat/{sessionID}
// prefix is stripped and the rest of the path forwarded verbatim.
// Each proxied call bumps the session's activity in the registry.
func ChatProxy(d deps.Deps) http.HandlerFunc {
	client := &http.Client{}

	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")

		target := *d.ChatAgent
		target.Path = "/" + sessionID
		if rest := chi.URLParam(r, "*"); rest != "" {
			target.Path += "/" + rest
		}
		target.RawQuery = r.URL.RawQuery

		var body io.Reader
		if r.Method != http.MethodGet && r.Method != http.MethodDelete {
			body = r.Body
		}

		req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), body)
		if err != nil {
			d.Logger.Error("failed to build agent request", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Agent routing failed")
			return
		}
		req.Header = r.Header.Clone()

		resp, err := client.Do(req)
		if err != nil {
			d.Logger.Error("agent request failed",
				logger.String("session", sessionID),
				logger.Error(err))
			respondErr(w, http.StatusBadGateway, "Agent routing failed")
			return
		}
		defer utils.Close(resp.Body)

		// Best effort, the registry is metadata only.
		if err := d.Store.TouchChatSession(r.Context(), sessionID); err != nil {
			d.Logger.Warn("failed to touch chat session", logger.Error(err))
		}

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(w, resp.Body); err != nil {
			d.Logger.Debug("failed to stream agent response", logger.Error(err))
		}
	}
}
