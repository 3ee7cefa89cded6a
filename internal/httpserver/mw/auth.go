package mw

import (
	"encoding/json"
	"net/http"

	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/store"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "creziapro_admin_session"

// AdminAuth guards back-office routes. The session cookie is verified
// against the record store; a missing, unknown or expired session gets
// a 401 and the cookie cleared. Verification of an expired session also
// removes it from storage (lazy expiry inside the store).
func AdminAuth(s *store.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeErrJSON(w, http.StatusUnauthorized, "Unauthorized: No session")
				return
			}

			session, err := s.VerifyAdminSession(r.Context(), cookie.Value)
			if err != nil {
				log.Error("admin session verification failed", logger.Error(err))
				writeErrJSON(w, http.StatusInternalServerError, "Failed to verify session")
				return
			}
			if session == nil {
				ClearSessionCookie(w)
				writeErrJSON(w, http.StatusUnauthorized, "Unauthorized: Invalid session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClearSessionCookie expires the admin session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// writeErrJSON emits the API's standard failure envelope from middleware,
// which cannot depend on the handlers package.
func writeErrJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
