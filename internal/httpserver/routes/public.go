package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/handlers"
	"github.com/creziapro/site/internal/httpserver/mw"
)

func init() { Register(registerPublic) }

func registerPublic(r chi.Router, d deps.Deps) {
	r.Get("/api/services", handlers.ListServices(d))
	r.Get("/api/projects", handlers.ListProjects(d))
	r.Get("/api/blog", handlers.ListBlogPosts(d))
	r.Get("/api/blog/{id}", handlers.GetBlogPostBySlug(d))
	r.Get("/api/banners", handlers.ListBanners(d))
	r.Get("/api/settings", handlers.GetSettings(d))
	r.Get("/api/reviews/approved", handlers.ListApprovedReviews(d))
	r.Get("/api/chatbot/config", handlers.GetChatbotConfig(d))

	// Public writes are rate limited per client IP.
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.RateLimitBurst,
		RefillPerMin: d.RateLimitPerMin,
		TrustProxy:   d.TrustProxy,
	}))
	limited.Post("/api/contact", handlers.SubmitContact(d))
	limited.Post("/api/reviews", handlers.SubmitReview(d))
}
