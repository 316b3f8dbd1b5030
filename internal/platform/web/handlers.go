// Package web serves the read-only leaderboard API over HTTP.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// maxLimit caps the ?limit= query parameter.
const maxLimit = 100

// Scores is the part of the store the API reads from.
type Scores interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	SessionRounds(sessionID string) ([]storage.RoundRecord, error)
	RecentRounds(gameID string, limit int) ([]storage.RoundRecord, error)
}

// Handler holds the API dependencies.
type Handler struct {
	scores Scores
	logger *log.Logger
	known  func(gameID string) bool
}

// NewHandler creates a handler backed by scores. Game IDs are checked
// against the registry.
func NewHandler(scores Scores, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		scores: scores,
		logger: logger,
		known:  registry.Exists,
	}
}

// APIResponse is the envelope of every response.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
}

// ListGames handles GET /api/v1/games
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, registry.List())
}

// TopScores handles GET /api/v1/scores/{game}?limit=
func (h *Handler) TopScores(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(w, r, 10)
	if !ok {
		return
	}

	scores, err := h.scores.TopScores(gameID, limit)
	if err != nil {
		h.internalError(w, "top scores", err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	respondJSON(w, http.StatusOK, scores)
}

// GameStats handles GET /api/v1/stats/{game}
func (h *Handler) GameStats(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}

	stats, err := h.scores.GetGameStats(gameID)
	if err != nil {
		h.internalError(w, "game stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// RecentRounds handles GET /api/v1/rounds/{game}?limit=
func (h *Handler) RecentRounds(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(w, r, 20)
	if !ok {
		return
	}

	rounds, err := h.scores.RecentRounds(gameID, limit)
	if err != nil {
		h.internalError(w, "recent rounds", err)
		return
	}
	if rounds == nil {
		rounds = []storage.RoundRecord{}
	}
	respondJSON(w, http.StatusOK, rounds)
}

// SessionRounds handles GET /api/v1/sessions/{id}/rounds
func (h *Handler) SessionRounds(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if !storage.ValidSessionID(sessionID) {
		respondError(w, http.StatusBadRequest, "INVALID_SESSION", "Session ID must be a UUID")
		return
	}

	rounds, err := h.scores.SessionRounds(sessionID)
	if err != nil {
		h.internalError(w, "session rounds", err)
		return
	}
	if len(rounds) == 0 {
		respondError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
		return
	}
	respondJSON(w, http.StatusOK, rounds)
}

func (h *Handler) gameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := mux.Vars(r)["game"]
	if !h.known(gameID) {
		respondError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Unknown game "+strconv.Quote(gameID))
		return "", false
	}
	return gameID, true
}

// limitParam parses ?limit=, falling back to def when absent.
func limitParam(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxLimit {
		respondError(w, http.StatusBadRequest, "INVALID_LIMIT",
			"limit must be between 1 and "+strconv.Itoa(maxLimit))
		return 0, false
	}
	return limit, true
}

func (h *Handler) internalError(w http.ResponseWriter, what string, err error) {
	h.logger.Error("request failed", "query", what, "error", err)
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
