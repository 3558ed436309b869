package roulette

import (
	"fmt"
	"math"
)

// Table holds the bets of the current round and enforces the wager limit.
type Table struct {
	// Limit is the maximum total wagered per round.
	Limit float64
	// Minimum is the smallest accepted single bet. Zero disables it.
	Minimum float64

	wheel *Wheel
	bets  []*Bet
}

// NewTable creates an empty table bound to w.
func NewTable(limit float64, w *Wheel) *Table {
	return &Table{Limit: limit, wheel: w}
}

// Wheel returns the wheel strategies use to look up outcomes.
func (t *Table) Wheel() *Wheel {
	return t.wheel
}

// PlaceBet adds b to the round. The bet is validated before it is stored, so
// a rejected bet leaves the table as it was.
func (t *Table) PlaceBet(b *Bet) error {
	if !(b.Amount > 0) || math.IsInf(b.Amount, 0) {
		return fmt.Errorf("%w: amount %g is not a positive finite number", ErrInvalidBet, b.Amount)
	}
	if b.Amount < t.Minimum {
		return fmt.Errorf("%w: amount %g below table minimum %g", ErrInvalidBet, b.Amount, t.Minimum)
	}
	if total := t.Total() + b.Amount; total > t.Limit {
		return fmt.Errorf("%w: total %g exceeds table limit %g", ErrInvalidBet, total, t.Limit)
	}
	t.bets = append(t.bets, b)
	return nil
}

// Total returns the sum of active bet amounts.
func (t *Table) Total() float64 {
	total := 0.0
	for _, b := range t.bets {
		total += b.Amount
	}
	return total
}

// Bets returns a copy of the active bets in placement order.
func (t *Table) Bets() []*Bet {
	out := make([]*Bet, len(t.bets))
	copy(out, t.bets)
	return out
}

// Clear removes every active bet. Called once per round after resolution.
func (t *Table) Clear() {
	t.bets = t.bets[:0]
}
