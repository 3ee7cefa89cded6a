package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/creziapro/site/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool   `json:"ready"`
	Storage  string `json:"storage"`
	Hydrated bool   `json:"hydrated"`
}

// Readyz reports whether the durable medium answers and the store
// mirror has been hydrated.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := readyzResponse{
			Storage:  "ok",
			Hydrated: d.Store.Hydrated(),
		}
		if err := d.KV.Ping(ctx); err != nil {
			resp.Storage = "unreachable"
		}
		resp.Ready = resp.Storage == "ok"

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
