package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/handlers"
	"github.com/creziapro/site/internal/httpserver/mw"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	guarded.Get("/healthz", handlers.Healthz(d))
	guarded.Get("/readyz", handlers.Readyz(d))
}
