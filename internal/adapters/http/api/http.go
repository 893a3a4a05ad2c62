// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	service "github.com/nahubn1/airplane-recognition-quiz/internal/app"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/round"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StartRound(ctx context.Context, categories []string, length int) (types.RoundView, error)
	GetRound(ctx context.Context, id string) (types.RoundView, error)
	SubmitAnswer(ctx context.Context, id, optionID string) (types.OutcomeView, error)
	Advance(ctx context.Context, id string) (types.RoundView, error)
	SaveScore(ctx context.Context, id, name string) (types.Placement, error)

	Leaderboard(ctx context.Context, limit int) ([]types.Entry, error)
	ResetLeaderboard(ctx context.Context) error

	Aircraft(ctx context.Context, category string) ([]types.Aircraft, error)
	AircraftImage(ctx context.Context, id string) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	roundsHandler      *RoundsHandler
	leaderboardHandler *LeaderboardHandler
	aircraftHandler    *AircraftHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		roundsHandler:      NewRoundsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		aircraftHandler:    NewAircraftHandler(deps),
		dashboardHandler:   newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("POST /rounds", MetricsMiddleware(s.roundsHandler.HandleStartRound, "rounds"))
	mux.HandleFunc("GET /rounds/{id}", MetricsMiddleware(s.roundsHandler.HandleGetRound, "round"))
	mux.HandleFunc("POST /rounds/{id}/answer", MetricsMiddleware(s.roundsHandler.HandleAnswer, "answer"))
	mux.HandleFunc("POST /rounds/{id}/advance", MetricsMiddleware(s.roundsHandler.HandleAdvance, "advance"))
	mux.HandleFunc("POST /rounds/{id}/score", MetricsMiddleware(s.roundsHandler.HandleSaveScore, "score"))

	mux.HandleFunc("GET /leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("DELETE /leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleResetLeaderboard, "leaderboard"))

	mux.HandleFunc("GET /aircraft", MetricsMiddleware(s.aircraftHandler.HandleListAircraft, "aircraft"))
	mux.HandleFunc("GET /aircraft/{id}/image", MetricsMiddleware(s.aircraftHandler.HandleAircraftImage, "aircraft_image"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps domain and service sentinels onto API statuses:
// unknown resources to 404, sequencing violations to 409, configuration
// mistakes to 400, everything else to 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRoundNotFound),
		errors.Is(err, service.ErrUnknownAircraft):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, round.ErrAlreadyAnswered):
		writeError(w, http.StatusConflict, "already_answered", err)
	case errors.Is(err, round.ErrAnswerPending):
		writeError(w, http.StatusConflict, "answer_pending", err)
	case errors.Is(err, round.ErrRoundComplete):
		writeError(w, http.StatusConflict, "round_complete", err)
	case errors.Is(err, service.ErrRoundNotComplete):
		writeError(w, http.StatusConflict, "round_not_complete", err)
	case errors.Is(err, service.ErrScoreSaved):
		writeError(w, http.StatusConflict, "score_saved", err)
	case errors.Is(err, round.ErrNoActiveRound):
		writeError(w, http.StatusConflict, "no_active_round", err)
	case errors.Is(err, service.ErrInvalidLength),
		errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, round.ErrNotEnoughAircraft):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
