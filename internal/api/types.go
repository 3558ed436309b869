package api

import (
	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/simulator"
)

// EngineError represents a structured error response with context
type EngineError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e EngineError) Error() string {
	return e.Message
}

// Error types
const (
	ErrTypeValidation      = "validation_error"
	ErrTypeUnknownStrategy = "unknown_strategy"
	ErrTypeScript          = "script_error"
	ErrTypeInvalidBet      = "invalid_bet"
	ErrTypeTimeout         = "timeout_error"
	ErrTypeInternal        = "internal_error"
)

// VersionInfo contains engine version information
type VersionInfo struct {
	EngineVersion string `json:"engine_version"`
	GitCommit     string `json:"git_commit,omitempty"`
	BuildTime     string `json:"build_time,omitempty"`
}

// SimulationRequest overrides the server's base configuration for one
// batch. Zero fields keep the base value.
type SimulationRequest struct {
	Strategy   string  `json:"strategy"`
	Rules      string  `json:"rules,omitempty"`
	Seed       *int64  `json:"seed,omitempty"`
	PlayerSeed uint32  `json:"player_seed,omitempty"`
	TableLimit float64 `json:"table_limit,omitempty"`
	Duration   int     `json:"duration,omitempty"`
	InitStake  float64 `json:"init_stake,omitempty"`
	Samples    int     `json:"samples,omitempty"`
	Script     string  `json:"script,omitempty"`
}

// SimulationResponse carries the batch summary and the raw samples.
type SimulationResponse struct {
	Summary       simulator.Summary `json:"summary"`
	Durations     []float64         `json:"durations"`
	Maxima        []float64         `json:"maxima"`
	EngineVersion string            `json:"engine_version"`
	Echo          SimulationRequest `json:"echo"`
}

// StrategiesResponse lists the registered strategy names.
type StrategiesResponse struct {
	Strategies    []string `json:"strategies"`
	EngineVersion string   `json:"engine_version"`
}

// OutcomesResponse lists every outcome a wheel variant registers.
type OutcomesResponse struct {
	Rules         string              `json:"rules"`
	Outcomes      []*roulette.Outcome `json:"outcomes"`
	EngineVersion string              `json:"engine_version"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status string `json:"status"`
	VersionInfo
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}
