package player

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/roulette"
)

// Options carries the per-strategy settings. Strategies ignore what they
// do not use.
type Options struct {
	// FixedAmount and FixedOutcome configure passenger57.
	FixedAmount  float64
	FixedOutcome string
	// Streak configures sevenreds.
	Streak int
	// Seed seeds the random strategy's own source.
	Seed uint32
	// Script is the JavaScript source for the script strategy.
	Script        string
	ScriptTimeout time.Duration

	Logger *zap.Logger
}

type factory func(table *roulette.Table, opts Options) (Strategy, error)

var registry = map[string]factory{
	"passenger57": func(t *roulette.Table, o Options) (Strategy, error) {
		return NewFixedBettor(t, o.FixedAmount, o.FixedOutcome), nil
	},
	"martingale": func(t *roulette.Table, o Options) (Strategy, error) {
		return NewMartingale(t), nil
	},
	"sevenreds": func(t *roulette.Table, o Options) (Strategy, error) {
		return NewWaitForStreak(t, o.Streak), nil
	},
	"random": func(t *roulette.Table, o Options) (Strategy, error) {
		return NewRandomBettor(t, o.Seed), nil
	},
	"script": func(t *roulette.Table, o Options) (Strategy, error) {
		return NewScriptBettor(t, o.Script, o.ScriptTimeout, o.Logger)
	},
}

var aliases = map[string]string{
	"fixed":         "passenger57",
	"waitforstreak": "sevenreds",
}

// New builds the strategy registered under name for table.
func New(name string, table *roulette.Table, opts Options) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return f(table, opts)
}

// Names lists the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
