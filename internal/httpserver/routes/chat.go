package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/handlers"
)

func init() { Register(registerChat) }

func registerChat(r chi.Router, d deps.Deps) {
	if d.ChatAgent == nil {
		d.Logger.Info("chat agent URL not configured, chat proxy disabled")
		return
	}
	r.HandleFunc("/api/chat/{sessionID}", handlers.ChatProxy(d))
	r.HandleFunc("/api/chat/{sessionID}/*", handlers.ChatProxy(d))
}
