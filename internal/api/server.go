// Package api exposes simulation runs over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/config"
	"github.com/MJE43/roulette-sim/internal/player"
	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/simulator"
)

// maxDuration caps the rounds per session a request may ask for.
const maxDuration = 100000

// Server handles HTTP requests
type Server struct {
	base      config.Config
	logger    *zap.Logger
	startTime time.Time

	// outcomes holds the outcome list per rule variant; wheels are
	// immutable once built.
	outcomes *cache.Cache
}

// NewServer creates a server that runs requests on top of base.
func NewServer(base config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		base:      base,
		logger:    logger,
		startTime: time.Now(),
		outcomes:  cache.New(cache.NoExpiration, 0),
	}
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RecoveryHandler)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/strategies", s.handleListStrategies)
		r.Get("/wheels/{rules}/outcomes", s.handleListOutcomes)
		r.Post("/simulations", s.handleSimulate)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		VersionInfo: GetVersionInfo(),
		Uptime:      time.Since(s.startTime).String(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		RequestID:   middleware.GetReqID(r.Context()),
	})
}

func (s *Server) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, StrategiesResponse{
		Strategies:    player.Names(),
		EngineVersion: EngineVersion,
	})
}

func (s *Server) handleListOutcomes(w http.ResponseWriter, r *http.Request) {
	rules := roulette.Rules(chi.URLParam(r, "rules"))
	if roulette.BuilderFor(rules) == nil {
		s.writeError(w, r, http.StatusNotFound, ErrTypeValidation,
			fmt.Sprintf("unknown rules %q", rules), map[string]any{"field": "rules"})
		return
	}
	s.writeJSON(w, http.StatusOK, OutcomesResponse{
		Rules:         string(rules),
		Outcomes:      s.outcomesFor(rules),
		EngineVersion: EngineVersion,
	})
}

func (s *Server) outcomesFor(rules roulette.Rules) []*roulette.Outcome {
	if v, found := s.outcomes.Get(string(rules)); found {
		return v.([]*roulette.Outcome)
	}
	// Never spun.
	outcomes := roulette.NewSeededWheel(rules, 0).Outcomes()
	s.outcomes.Set(string(rules), outcomes, cache.NoExpiration)
	return outcomes
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", map[string]any{"cause": err.Error()})
		return
	}

	cfg := s.apply(req)
	if limit := s.base.Server.MaxSamples; limit > 0 && cfg.Simulation.Samples > limit {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation,
			fmt.Sprintf("samples %d exceeds the limit of %d", cfg.Simulation.Samples, limit),
			map[string]any{"field": "samples"})
		return
	}
	if cfg.Simulation.Duration > maxDuration {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation,
			fmt.Sprintf("duration %d exceeds the limit of %d", cfg.Simulation.Duration, maxDuration),
			map[string]any{"field": "duration"})
		return
	}

	logger := s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
	sim, err := simulator.Build(&cfg, logger)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if err := sim.Gather(r.Context()); err != nil {
		s.handleError(w, r, err)
		return
	}
	summary, err := sim.Summary()
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, SimulationResponse{
		Summary:       summary,
		Durations:     sim.Durations().Values(),
		Maxima:        sim.Maxima().Values(),
		EngineVersion: EngineVersion,
		Echo:          req,
	})
}

// apply overlays the non-zero request fields on the base config.
func (s *Server) apply(req SimulationRequest) config.Config {
	cfg := s.base
	if req.Strategy != "" {
		cfg.Player.Strategy = req.Strategy
	}
	if req.Rules != "" {
		cfg.Wheel.Rules = req.Rules
	}
	if req.Seed != nil {
		cfg.Wheel.Seed = req.Seed
	}
	if req.PlayerSeed != 0 {
		cfg.Player.Seed = req.PlayerSeed
	}
	if req.TableLimit != 0 {
		cfg.Table.Limit = req.TableLimit
	}
	if req.Duration != 0 {
		cfg.Simulation.Duration = req.Duration
	}
	if req.InitStake != 0 {
		cfg.Simulation.InitStake = req.InitStake
	}
	if req.Samples != 0 {
		cfg.Simulation.Samples = req.Samples
	}
	if req.Script != "" {
		cfg.Player.Script = req.Script
	}
	cfg.Simulation.Debug = false
	return cfg
}
