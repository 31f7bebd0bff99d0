package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the public API routes and middleware chain.
func NewRouter(s *Server) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware)
	r.Use(MetricsMiddleware)

	r.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/leaderboard/{program}", s.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/prev-leaderboard/{program}", s.PrevLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/countdown/{program}", s.Countdown).Methods(http.MethodGet)

	return CORSMiddleware(r)
}
