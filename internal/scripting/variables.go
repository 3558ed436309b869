package scripting

import (
	"github.com/dop251/goja"

	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/stats"
)

// injectConstants sets read-only outcome name constants on the JS runtime.
func injectConstants(vm *goja.Runtime) {
	vm.Set("RED", roulette.Red)
	vm.Set("BLACK", roulette.Black)
	vm.Set("EVEN", roulette.Even)
	vm.Set("ODD", roulette.Odd)
	vm.Set("LOW", roulette.Low)
	vm.Set("HIGH", roulette.High)
	vm.Set("FIVE_BET", roulette.FiveBet)
	vm.Set("FOUR_BET", roulette.FourBet)
}

// Variables holds the globals a strategy script reads and writes.
type Variables struct {
	// Written by the script.
	NextBet float64 `json:"nextbet"`
	Outcome string  `json:"outcome"`

	// Read-only for the script.
	Stake       float64  `json:"stake"`
	Rounds      int      `json:"rounds"`
	Limit       float64  `json:"limit"`
	PreviousBet float64  `json:"previousbet"`
	Win         bool     `json:"win"`
	LastBin     []string `json:"lastbin"`

	// Stats is shared with the strategy that owns the session.
	Stats *stats.Session `json:"-"`
}

// NewVariables creates Variables over stats with a one unit bet on black.
func NewVariables(s *stats.Session) *Variables {
	return &Variables{
		NextBet: 1,
		Outcome: roulette.Black,
		Stake:   s.Stake,
		LastBin: []string{},
		Stats:   s,
	}
}

// injectVariables sets the strategy globals on the JS runtime. Read-only
// semantics are enforced by only syncing writable names back.
func injectVariables(vm *goja.Runtime, vars *Variables) {
	vm.Set("nextbet", vars.NextBet)
	vm.Set("outcome", vars.Outcome)

	vm.Set("stake", vars.Stake)
	vm.Set("balance", vars.Stake)
	vm.Set("rounds", vars.Rounds)
	vm.Set("limit", vars.Limit)
	vm.Set("previousbet", vars.PreviousBet)
	vm.Set("win", vars.Win)
	vm.Set("lastbin", vars.LastBin)

	vm.Set("bets", vars.Stats.Bets)
	vm.Set("wins", vars.Stats.Wins)
	vm.Set("losses", vars.Stats.Losses)
	vm.Set("winstreak", vars.Stats.WinStreak)
	vm.Set("losestreak", vars.Stats.LoseStreak)
	vm.Set("profit", vars.Stats.Profit())
	vm.Set("wagered", vars.Stats.Wagered)
	vm.Set("highest_bet", vars.Stats.HighestBet)
	vm.Set("started_bal", vars.Stats.StartBal)
}

// syncFromVM reads the writable globals back into vars.
func syncFromVM(vm *goja.Runtime, vars *Variables) {
	vars.NextBet = toFloat64(vm.Get("nextbet"))
	vars.Outcome = toString(vm.Get("outcome"))
}

func toFloat64(v goja.Value) float64 {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0
	}
	return v.ToFloat()
}

func toString(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
