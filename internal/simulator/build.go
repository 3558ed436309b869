package simulator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/config"
	"github.com/MJE43/roulette-sim/internal/player"
	"github.com/MJE43/roulette-sim/internal/rng"
	"github.com/MJE43/roulette-sim/internal/roulette"
)

// Build assembles wheel, table, strategy and game from cfg.
func Build(cfg *config.Config, logger *zap.Logger) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var src rng.Source
	if cfg.Wheel.Seed != nil {
		src = rng.NewSeededSource(*cfg.Wheel.Seed, "wheel")
	}
	wheel := roulette.NewWheel(roulette.Rules(cfg.Wheel.Rules), src)

	table := roulette.NewTable(cfg.Table.Limit, wheel)
	table.Minimum = cfg.Table.Minimum

	strategy, err := player.New(cfg.Player.Strategy, table, player.Options{
		FixedAmount:   cfg.Player.FixedAmount,
		FixedOutcome:  cfg.Player.FixedOutcome,
		Streak:        cfg.Player.Streak,
		Seed:          cfg.Player.Seed,
		Script:        cfg.Player.Script,
		ScriptTimeout: cfg.Player.ScriptTimeout,
		Logger:        logger.Named("script"),
	})
	if err != nil {
		return nil, fmt.Errorf("build player: %w", err)
	}

	sim := New(roulette.NewGame(table), strategy, Config{
		Duration:  cfg.Simulation.Duration,
		InitStake: cfg.Simulation.InitStake,
		Samples:   cfg.Simulation.Samples,
		Debug:     cfg.Simulation.Debug,
	}, logger)

	logger.Debug("simulator built",
		zap.String("run_id", sim.RunID().String()),
		zap.String("rules", cfg.Wheel.Rules),
		zap.String("strategy", strategy.Name()),
		zap.Float64("table_limit", table.Limit),
	)
	return sim, nil
}
