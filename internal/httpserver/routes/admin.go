package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/handlers"
	"github.com/creziapro/site/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Post("/api/admin/login", handlers.Login(d))
	r.Post("/api/admin/logout", handlers.Logout(d))

	admin := r.With(mw.AdminAuth(d.Store, d.Logger))

	admin.Get("/api/admin/verify", handlers.Verify(d))

	admin.Post("/api/services", handlers.CreateService(d))
	admin.Put("/api/services/{id}", handlers.UpdateService(d))
	admin.Delete("/api/services/{id}", handlers.DeleteService(d))

	admin.Post("/api/projects", handlers.CreateProject(d))
	admin.Put("/api/projects/{id}", handlers.UpdateProject(d))
	admin.Delete("/api/projects/{id}", handlers.DeleteProject(d))

	admin.Post("/api/blog", handlers.CreateBlogPost(d))
	admin.Put("/api/blog/{id}", handlers.UpdateBlogPost(d))
	admin.Delete("/api/blog/{id}", handlers.DeleteBlogPost(d))

	admin.Post("/api/banners", handlers.CreateBanner(d))
	admin.Put("/api/banners/{id}", handlers.UpdateBanner(d))
	admin.Delete("/api/banners/{id}", handlers.DeleteBanner(d))

	admin.Get("/api/reviews", handlers.ListReviews(d))
	admin.Put("/api/reviews/{id}/approve", handlers.ApproveReview(d))
	admin.Delete("/api/reviews/{id}", handlers.DeleteReview(d))

	admin.Get("/api/messages", handlers.ListMessages(d))
	admin.Put("/api/messages/{id}/read", handlers.MarkMessageRead(d))
	admin.Delete("/api/messages/{id}", handlers.DeleteMessage(d))

	admin.Put("/api/settings", handlers.UpdateSettings(d))
	admin.Get("/api/dashboard/stats", handlers.GetStats(d))
}
