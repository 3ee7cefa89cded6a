package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// SubmitReview accepts a public review submission. Whatever the payload
// claims, the stored review starts pending.
func SubmitReview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Name == "" || body.Comment == "" {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if body.Rating < 1 || body.Rating > 5 {
			respondErr(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}

		review, err := d.Store.AddReview(r.Context(), body.Name, body.Rating, body.Comment)
		if err != nil {
			d.Logger.Error("failed to submit review", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to submit review")
			return
		}
		respondCreated(w, review)
	}
}

// ListApprovedReviews serves the public testimonials.
func ListApprovedReviews(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := d.Store.ListReviews(r.Context(), domain.ReviewApproved)
		if err != nil {
			d.Logger.Error("failed to list approved reviews", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve reviews")
			return
		}
		respondOK(w, reviews)
	}
}

// ListReviews serves the full moderation queue (admin).
func ListReviews(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.ReviewStatus(r.URL.Query().Get("status"))
		if status != "" && !status.Valid() {
			respondErr(w, http.StatusBadRequest, "Invalid review status")
			return
		}

		reviews, err := d.Store.ListReviews(r.Context(), status)
		if err != nil {
			d.Logger.Error("failed to list reviews", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve reviews")
			return
		}
		respondOK(w, reviews)
	}
}

// ApproveReview moves a review out of the moderation queue (admin).
func ApproveReview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		review, err := d.Store.UpdateReviewStatus(r.Context(), id, domain.ReviewApproved)
		if err != nil {
			d.Logger.Error("failed to approve review", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to approve review")
			return
		}
		if review == nil {
			respondErr(w, http.StatusNotFound, "Review not found")
			return
		}
		respondOK(w, review)
	}
}

// DeleteReview removes a review (admin).
func DeleteReview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteReview(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete review", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete review")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Review not found")
			return
		}
		respondOK(w, nil)
	}
}
