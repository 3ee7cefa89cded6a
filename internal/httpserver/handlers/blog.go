package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// ListBlogPosts serves the blog listing, optionally filtered to
// published posts via ?publishedOnly=true. Posts come newest first.
func ListBlogPosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("publishedOnly") == "true"

		posts, err := d.Store.ListBlogPosts(r.Context(), publishedOnly)
		if err != nil {
			d.Logger.Error("failed to list blog posts", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve blog posts")
			return
		}
		respondOK(w, posts)
	}
}

// GetBlogPostBySlug serves one published post. The path parameter is
// the post slug, not the record id.
func GetBlogPostBySlug(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "id")

		posts, err := d.Store.ListBlogPosts(r.Context(), true)
		if err != nil {
			d.Logger.Error("failed to get blog post", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve blog post")
			return
		}
		for _, post := range posts {
			if post.Slug == slug {
				respondOK(w, post)
				return
			}
		}
		respondErr(w, http.StatusNotFound, "Post not found")
	}
}

// CreateBlogPost stores a new post (admin).
func CreateBlogPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.BlogPost
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Title == "" || body.Slug == "" || body.Content == "" || body.Author == "" {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		post, err := d.Store.AddBlogPost(r.Context(), body)
		if err != nil {
			d.Logger.Error("failed to create blog post", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create blog post")
			return
		}
		respondCreated(w, post)
	}
}

// UpdateBlogPost applies a partial update (admin).
func UpdateBlogPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.BlogPostPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		post, err := d.Store.UpdateBlogPost(r.Context(), id, patch)
		if err != nil {
			d.Logger.Error("failed to update blog post", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update blog post")
			return
		}
		if post == nil {
			respondErr(w, http.StatusNotFound, "Blog post not found")
			return
		}
		respondOK(w, post)
	}
}

// DeleteBlogPost removes a post (admin).
func DeleteBlogPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteBlogPost(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete blog post", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete blog post")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Blog post not found")
			return
		}
		respondOK(w, nil)
	}
}
