package roulette

import "fmt"

// Bet is an amount wagered on one outcome. The outcome is borrowed from the
// wheel's registry.
type Bet struct {
	Amount  float64
	Outcome *Outcome
}

// NewBet creates a bet.
func NewBet(amount float64, outcome *Outcome) *Bet {
	return &Bet{Amount: amount, Outcome: outcome}
}

// WinAmount returns amount * odds.
func (b *Bet) WinAmount() float64 {
	return b.Outcome.WinAmount(b.Amount)
}

// LoseAmount returns the amount forfeited against the outcome's odds.
func (b *Bet) LoseAmount() float64 {
	return b.Outcome.WinAmount(b.Amount)
}

func (b *Bet) String() string {
	return fmt.Sprintf("%g on %s", b.Amount, b.Outcome)
}
