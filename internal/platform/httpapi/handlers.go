package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

const maxLimit = 100

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LeaderboardResponse lists the top results of one difficulty.
type LeaderboardResponse struct {
	Difficulty config.Difficulty     `json:"difficulty"`
	Results    []storage.ResultEntry `json:"results"`
}

// HandleHealthz reports that the process is up.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleLeaderboard returns the top results for the difficulty in the path.
// An optional limit query parameter overrides defaultLimit.
func HandleLeaderboard(results Results, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if results == nil {
			respondError(w, http.StatusServiceUnavailable, "result storage unavailable")
			return
		}

		d, err := config.ParseDifficulty(chi.URLParam(r, "difficulty"))
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxLimit {
				respondError(w, http.StatusBadRequest, "limit must be between 1 and 100")
				return
			}
			limit = n
		}

		entries, err := results.TopResults(d, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load leaderboard")
			return
		}
		if entries == nil {
			entries = []storage.ResultEntry{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Difficulty: d, Results: entries})
	}
}

// HandleStats returns lifetime totals across all difficulties.
func HandleStats(results Results) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if results == nil {
			respondError(w, http.StatusServiceUnavailable, "result storage unavailable")
			return
		}

		stats, err := results.LifetimeStats()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load stats")
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
