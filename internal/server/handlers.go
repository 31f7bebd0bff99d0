package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/gambizardonkick/aetricrewardsdata/internal/board"
	"github.com/gambizardonkick/aetricrewardsdata/internal/logger"
	"github.com/gambizardonkick/aetricrewardsdata/internal/metrics"
	"github.com/gambizardonkick/aetricrewardsdata/internal/period"
	"github.com/gambizardonkick/aetricrewardsdata/internal/registry"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// upstreamTimeout bounds a single request's affiliate API fetch, including
// the adapter's internal retries.
const upstreamTimeout = 15 * time.Second

// Server serves the leaderboard endpoints for all registered programs.
// Windows are computed fresh per request, never at startup.
type Server struct {
	registry *registry.ProgramRegistry
	now      func() time.Time
}

// NewServer creates a server over the given program registry.
func NewServer(reg *registry.ProgramRegistry) *Server {
	return &Server{
		registry: reg,
		now:      time.Now,
	}
}

// Leaderboard serves the current-window leaderboard for a program.
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	s.serveLeaderboard(w, r, false)
}

// PrevLeaderboard serves the previous-window leaderboard for a program.
func (s *Server) PrevLeaderboard(w http.ResponseWriter, r *http.Request) {
	s.serveLeaderboard(w, r, true)
}

func (s *Server) serveLeaderboard(w http.ResponseWriter, r *http.Request, previous bool) {
	program, ok := s.lookupProgram(w, r)
	if !ok {
		return
	}

	bounds := program.GetPeriodBounds(s.now().UTC())
	window := bounds.Current
	failureMsg := "Failed to fetch leaderboard data"
	if previous {
		window = bounds.Previous
		failureMsg = "Failed to fetch previous leaderboard data"
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()

	fetchStart := time.Now()
	records, err := program.FetchWagers(ctx, window)
	metrics.UpstreamFetchSeconds.WithLabelValues(program.GetProgramKey()).
		Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		// Network and data-shape failures are deliberately not
		// distinguished in the response.
		metrics.UpstreamErrors.WithLabelValues(program.GetProgramKey()).Inc()
		logger.Error("[%s] fetch wagers: %v", program.GetProgramKey(), err)
		writeError(w, http.StatusInternalServerError, failureMsg)
		return
	}

	payload := board.Build(records, program.GetPrizeTable(), window, program.DropsNonPositive())
	writeJSON(w, http.StatusOK, payload)
}

// Countdown serves the percentage of the current window remaining.
func (s *Server) Countdown(w http.ResponseWriter, r *http.Request) {
	program, ok := s.lookupProgram(w, r)
	if !ok {
		return
	}

	now := s.now().UTC()
	window := program.GetPeriodBounds(now).Current
	writeJSON(w, http.StatusOK, models.CountdownPayload{
		PercentageLeft: period.PercentageLeft(window, now),
	})
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) lookupProgram(w http.ResponseWriter, r *http.Request) (contracts.ProgramModule, bool) {
	key := mux.Vars(r)["program"]
	program, exists := s.registry.Get(key)
	if !exists {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown program %q", key))
		return nil, false
	}
	return program, true
}
