package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/MJE43/roulette-sim/internal/config"
	"github.com/MJE43/roulette-sim/internal/player"
)

func seededConfig(strategy string, seed int64) *config.Config {
	cfg := config.Default()
	cfg.Wheel.Seed = &seed
	cfg.Player.Strategy = strategy
	cfg.Simulation.Samples = 5
	return &cfg
}

func TestBuild(t *testing.T) {
	for _, name := range []string{"passenger57", "martingale", "sevenreds", "random"} {
		t.Run(name, func(t *testing.T) {
			sim, err := Build(seededConfig(name, 1), nil)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if sim.Player().Name() != name {
				t.Errorf("player = %s, want %s", sim.Player().Name(), name)
			}
			if err := sim.Gather(context.Background()); err != nil {
				t.Fatalf("Gather: %v", err)
			}
			if sim.Durations().Len() != 5 {
				t.Errorf("recorded %d sessions, want 5", sim.Durations().Len())
			}
		})
	}
}

func TestBuildReproducible(t *testing.T) {
	run := func() []float64 {
		sim, err := Build(seededConfig("random", 7), nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := sim.Gather(context.Background()); err != nil {
			t.Fatal(err)
		}
		return sim.Maxima().Values()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("session %d: %g != %g with identical seeds", i, a[i], b[i])
		}
	}
}

func TestBuildPrisonScript(t *testing.T) {
	cfg := seededConfig("script", 2)
	cfg.Wheel.Rules = "prison"
	cfg.Player.Script = `
		nextbet = 1
		outcome = "0"
		dobet = function() {}
	`
	sim, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.Game().Table().Wheel().Rules() != "prison" {
		t.Errorf("rules = %s", sim.Game().Table().Wheel().Rules())
	}
	if err := sim.Gather(context.Background()); err != nil {
		t.Fatalf("Gather: %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(seededConfig("labouchere", 1), nil); !errors.Is(err, player.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}

	cfg := seededConfig("martingale", 1)
	cfg.Table.Limit = 0
	if _, err := Build(cfg, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
