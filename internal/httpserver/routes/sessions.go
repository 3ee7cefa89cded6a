package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/handlers"
)

func init() { Register(registerSessions) }

func registerSessions(r chi.Router, d deps.Deps) {
	r.Get("/api/sessions", handlers.ListSessions(d))
	r.Post("/api/sessions", handlers.CreateSession(d))
	r.Delete("/api/sessions", handlers.ClearSessions(d))
	r.Delete("/api/sessions/{id}", handlers.DeleteSession(d))
	r.Put("/api/sessions/{id}/title", handlers.RenameSession(d))
}
