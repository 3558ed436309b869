// Package player implements the betting strategies a simulation can drive.
package player

import (
	"errors"
	"fmt"

	"github.com/MJE43/roulette-sim/internal/roulette"
)

var (
	// ErrUnknownStrategy is returned when no strategy is registered under a name.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrUnknownOutcome is returned when a strategy names an outcome the
	// wheel never registered.
	ErrUnknownOutcome = errors.New("unknown outcome")
	// ErrScript wraps failures raised by a scripted strategy.
	ErrScript = errors.New("script error")
)

// Strategy is a roulette.Player the simulator can start, budget and reset.
type Strategy interface {
	roulette.Player

	// Name returns the registry name of the strategy.
	Name() string
	// Reset forgets stake, rounds and any strategy state.
	Reset()
	SetStake(stake float64)
	SetRounds(rounds int)
	// Stake returns the current stake and whether one has been set.
	Stake() (float64, bool)
	// Rounds returns the remaining rounds and whether a budget has been set.
	Rounds() (int, bool)
}

// bankroll carries the stake and rounds budget shared by every strategy.
type bankroll struct {
	table *roulette.Table

	stake     float64
	rounds    int
	hasStake  bool
	hasRounds bool
}

func (b *bankroll) SetStake(stake float64) {
	b.stake = stake
	b.hasStake = true
}

func (b *bankroll) SetRounds(rounds int) {
	b.rounds = rounds
	b.hasRounds = true
}

func (b *bankroll) Stake() (float64, bool) {
	return b.stake, b.hasStake
}

func (b *bankroll) Rounds() (int, bool) {
	return b.rounds, b.hasRounds
}

func (b *bankroll) Reset() {
	*b = bankroll{table: b.table}
}

// Playing is true once a session has set both budgets and neither is spent.
func (b *bankroll) Playing() bool {
	return b.hasStake && b.hasRounds && b.rounds > 0 && b.stake > 0
}

// Winners counts the round against the budget.
func (b *bankroll) Winners(*roulette.Bin) {
	if b.hasRounds {
		b.rounds--
	}
}

// Win returns the bet's winnings.
func (b *bankroll) Win(bet *roulette.Bet) float64 {
	return bet.WinAmount()
}

// Lose returns nothing, except on a prison outcome where half the would-be
// winnings come back.
func (b *bankroll) Lose(bet *roulette.Bet) float64 {
	if bet.Outcome.Prison {
		return bet.WinAmount() / 2
	}
	return 0
}

// outcome looks name up on the table's wheel.
func (b *bankroll) outcome(name string) (*roulette.Outcome, error) {
	o, ok := b.table.Wheel().Outcome(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutcome, name)
	}
	return o, nil
}

// place puts a bet on the table and deducts it from the stake once the
// table accepts it.
func (b *bankroll) place(o *roulette.Outcome, amount float64) error {
	if err := b.table.PlaceBet(roulette.NewBet(amount, o)); err != nil {
		return err
	}
	b.stake -= amount
	return nil
}

// settleWin credits the wager plus winnings.
func (b *bankroll) settleWin(bet *roulette.Bet) float64 {
	v := b.Win(bet)
	b.stake += bet.Amount + v
	return v
}

// settleLoss credits whatever the loss returns.
func (b *bankroll) settleLoss(bet *roulette.Bet) float64 {
	v := b.Lose(bet)
	b.stake += v
	return v
}

// maxBet caps amount by the table limit and the stake.
func (b *bankroll) maxBet(amount float64) float64 {
	return min(amount, b.table.Limit, b.stake)
}
