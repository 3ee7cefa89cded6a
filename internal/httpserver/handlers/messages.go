package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// SubmitContact accepts a public contact form submission.
func SubmitContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Name == "" || body.Email == "" || body.Message == "" {
			respondErr(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		message, err := d.Store.AddContactMessage(r.Context(), body.Name, body.Email, body.Message)
		if err != nil {
			d.Logger.Error("failed to store contact message", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to process contact message")
			return
		}
		respondOK(w, message)
	}
}

// ListMessages serves the admin inbox, newest first.
func ListMessages(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := d.Store.ListContactMessages(r.Context())
		if err != nil {
			d.Logger.Error("failed to list messages", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve messages")
			return
		}
		respondOK(w, messages)
	}
}

// MarkMessageRead flags a message as read (admin).
func MarkMessageRead(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		marked, err := d.Store.MarkMessageRead(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to mark message as read", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update message")
			return
		}
		if !marked {
			respondErr(w, http.StatusNotFound, "Message not found")
			return
		}
		respondOK(w, nil)
	}
}

// DeleteMessage removes a message from the inbox (admin).
func DeleteMessage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.DeleteContactMessage(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete message", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete message")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Message not found")
			return
		}
		respondOK(w, nil)
	}
}
