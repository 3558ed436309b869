// Package simulator runs betting strategies through bounded sessions and
// collects duration and peak-stake statistics across them.
package simulator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/player"
	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/stats"
)

// Config fixes the shape of every session a Simulator runs.
type Config struct {
	// Duration caps the rounds of one session.
	Duration  int
	InitStake float64
	// Samples is the number of sessions Gather runs.
	Samples int
	// Debug logs every session's stake history.
	Debug bool
}

// DefaultConfig returns 250 rounds, 100 units and 50 sessions.
func DefaultConfig() Config {
	return Config{
		Duration:  250,
		InitStake: 100,
		Samples:   50,
	}
}

// Simulator drives one strategy on one game.
type Simulator struct {
	cfg    Config
	game   *roulette.Game
	player player.Strategy
	logger *zap.Logger

	runID     uuid.UUID
	durations *stats.Series
	maxima    *stats.Series
}

// New creates a simulator. Non-positive config fields take their defaults.
func New(game *roulette.Game, p player.Strategy, cfg Config, logger *zap.Logger) *Simulator {
	def := DefaultConfig()
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.InitStake <= 0 {
		cfg.InitStake = def.InitStake
	}
	if cfg.Samples <= 0 {
		cfg.Samples = def.Samples
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		cfg:       cfg,
		game:      game,
		player:    p,
		logger:    logger,
		runID:     uuid.New(),
		durations: stats.NewSeries(),
		maxima:    stats.NewSeries(),
	}
}

// Config returns the settings after defaults were applied.
func (s *Simulator) Config() Config { return s.cfg }

// Game returns the game every session plays on.
func (s *Simulator) Game() *roulette.Game { return s.game }

// Player returns the strategy under test.
func (s *Simulator) Player() player.Strategy { return s.player }

// RunID identifies the current batch in logs and summaries.
func (s *Simulator) RunID() uuid.UUID { return s.runID }

// Durations holds the round count of every recorded session.
func (s *Simulator) Durations() *stats.Series { return s.durations }

// Maxima holds the peak stake of every recorded session.
func (s *Simulator) Maxima() *stats.Series { return s.maxima }

// RunSession plays one session from a fresh player and returns the stake
// after every round, starting with the entry stake. The session ends when
// the player stops or Duration rounds have run. Statistics are recorded only
// for sessions that complete without error. Cancelling ctx ends the session
// with ctx's error.
func (s *Simulator) RunSession(ctx context.Context) ([]float64, error) {
	s.player.Reset()
	s.player.SetRounds(s.cfg.Duration)
	s.player.SetStake(s.cfg.InitStake)

	stake, _ := s.player.Stake()
	history := []float64{stake}
	peak := stake

	rounds := 0
	for s.player.Playing() && rounds < s.cfg.Duration {
		if err := ctx.Err(); err != nil {
			return history, fmt.Errorf("session round %d: %w", rounds+1, err)
		}
		if _, err := s.game.PlayRound(s.player); err != nil {
			return history, fmt.Errorf("session round %d: %w", rounds+1, err)
		}
		rounds++

		stake, _ = s.player.Stake()
		history = append(history, stake)
		peak = max(peak, stake)
	}

	s.durations.Append(float64(rounds))
	s.maxima.Append(peak)

	fields := []zap.Field{
		zap.String("run_id", s.runID.String()),
		zap.Int("session", s.durations.Len()),
		zap.Int("rounds", rounds),
		zap.Float64("final_stake", stake),
		zap.Float64("peak_stake", peak),
	}
	if s.cfg.Debug {
		fields = append(fields, zap.Float64s("history", history))
	}
	s.logger.Debug("session finished", fields...)

	return history, nil
}

// RunBatch runs n sessions, stopping at the first error.
func (s *Simulator) RunBatch(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.RunSession(ctx); err != nil {
			return fmt.Errorf("session %d of %d: %w", i+1, n, err)
		}
	}
	s.logger.Info("batch finished",
		zap.String("run_id", s.runID.String()),
		zap.String("strategy", s.player.Name()),
		zap.Int("sessions", n),
	)
	return nil
}

// Gather runs the configured number of sessions.
func (s *Simulator) Gather(ctx context.Context) error {
	return s.RunBatch(ctx, s.cfg.Samples)
}

// Reset drops collected statistics and starts a new run ID.
func (s *Simulator) Reset() {
	s.durations.Reset()
	s.maxima.Reset()
	s.runID = uuid.New()
}
