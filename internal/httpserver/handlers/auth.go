package handlers

import (
	"net/http"

	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/httpserver/mw"
	"github.com/creziapro/site/internal/logger"
)

// sessionMaxAge matches the store's 24h admin session lifetime.
const sessionMaxAge = 60 * 60 * 24

// Login checks the credentials, mints an admin session and hands it to
// the browser as an httpOnly cookie.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeJSON(r, &body); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !d.Credentials.Verify(body.Email, body.Password) {
			respondErr(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := d.Store.CreateAdminSession(r.Context(), body.Email)
		if err != nil {
			d.Logger.Error("failed to create admin session", logger.Error(err))
			respondErr(w, http.StatusInternalServerError, "Failed to create session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		respondOK(w, nil)
	}
}

// Logout deletes the session server-side and clears the cookie.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(mw.SessionCookie); err == nil && cookie.Value != "" {
			if err := d.Store.DeleteAdminSession(r.Context(), cookie.Value); err != nil {
				d.Logger.Warn("failed to delete admin session", logger.Error(err))
			}
		}
		mw.ClearSessionCookie(w)
		respondOK(w, nil)
	}
}

// Verify reports whether the caller holds a valid admin session.
// The auth middleware has already done the work by the time we get here.
func Verify(deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondOK(w, nil)
	}
}
