package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
)

// ListSessions serves the chat session registry, most recently active first.
func ListSessions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := d.Store.ListChatSessions(r.Context())
		if err != nil {
			d.Logger.Error("failed to list sessions", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to retrieve sessions")
			return
		}
		respondOK(w, sessions)
	}
}

// CreateSession registers a chat session. The caller may supply an id
// (to match an agent conversation) and a title; absent a title one is
// derived from the first message or the current date.
func CreateSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SessionID    string `json:"sessionId"`
			Title        string `json:"title"`
			FirstMessage string `json:"firstMessage"`
		}
		// An empty body is fine, everything is optional.
		_ = decodeJSON(r, &body)

		id := body.SessionID
		if id == "" {
			id = uuid.NewString()
		}
		title := body.Title
		if title == "" {
			title = defaultSessionTitle(body.FirstMessage, time.Now())
		}

		session, err := d.Store.AddChatSession(r.Context(), id, title)
		if err != nil {
			d.Logger.Error("failed to create session", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		respondOK(w, map[string]string{
			"sessionId": session.ID,
			"title":     session.Title,
		})
	}
}

// defaultSessionTitle builds a title from the opening message, falling
// back to a dated generic one.
func defaultSessionTitle(firstMessage string, now time.Time) string {
	dateTime := now.Format("01/02 15:04")

	message := strings.Join(strings.Fields(firstMessage), " ")
	if message == "" {
		return "Chat " + dateTime
	}
	// Truncate on rune boundaries so multi-byte text stays valid UTF-8.
	if runes := []rune(message); len(runes) > 40 {
		message = string(runes[:37]) + "..."
	}
	return message + " • " + dateTime
}

// DeleteSession removes one chat session from the registry.
func DeleteSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := d.Store.RemoveChatSession(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to delete session", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to delete session")
			return
		}
		if !deleted {
			respondErr(w, http.StatusNotFound, "Session not found")
			return
		}
		respondOK(w, map[string]bool{"deleted": true})
	}
}

// RenameSession updates a session title.
func RenameSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body struct {
			Title string `json:"title"`
		}
		if err := decodeJSON(r, &body); err != nil || body.Title == "" {
			respondErr(w, http.StatusBadRequest, "Title is required")
			return
		}

		renamed, err := d.Store.RenameChatSession(r.Context(), id, body.Title)
		if err != nil {
			d.Logger.Error("failed to update session title", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to update session title")
			return
		}
		if !renamed {
			respondErr(w, http.StatusNotFound, "Session not found")
			return
		}
		respondOK(w, map[string]string{"title": body.Title})
	}
}

// ClearSessions bulk-deletes every chat session.
func ClearSessions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := d.Store.ClearChatSessions(r.Context())
		if err != nil {
			d.Logger.Error("failed to clear sessions", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to clear all sessions")
			return
		}
		respondOK(w, map[string]int{"deletedCount": count})
	}
}
