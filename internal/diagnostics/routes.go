package diagnostics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/learnhub/internal/apperr"
)

// RegisterRoutes mounts diagnostics endpoints under /api/diagnostics on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/diagnostics", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Get("/summary", handleSummary(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var filter Filter
		if v := q.Get("kind"); v != "" {
			filter.Kind = Kind(v)
			if !filter.Kind.Valid() {
				apperr.Write(w, apperr.NewInvalidRequest("unknown kind: "+v, map[string]any{"kinds": Kinds}))
				return
			}
		}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				apperr.Write(w, apperr.NewInvalidRequest("limit must be a non-negative integer", nil))
				return
			}
			filter.Limit = n
		}

		events, err := store.List(r.Context(), filter)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}

func handleSummary(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := store.Summary(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		writeJSON(w, http.StatusOK, map[string]any{"counts": counts, "total": total})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
