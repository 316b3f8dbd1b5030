package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router.
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(h.RecoveryMiddleware)
	r.Use(h.LoggingMiddleware)

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// API routes stay on the root router so wrong methods get a 405.
	r.HandleFunc("/api/v1/games", h.ListGames).Methods("GET")
	r.HandleFunc("/api/v1/scores/{game}", h.TopScores).Methods("GET")
	r.HandleFunc("/api/v1/stats/{game}", h.GameStats).Methods("GET")
	r.HandleFunc("/api/v1/rounds/{game}", h.RecentRounds).Methods("GET")
	r.HandleFunc("/api/v1/sessions/{id}/rounds", h.SessionRounds).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowedHandler)

	return r
}

// NotFoundHandler handles 404 errors
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}

// MethodNotAllowedHandler handles 405 errors
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}
