package player

import "github.com/MJE43/roulette-sim/internal/roulette"

// Default fixed bet.
const (
	DefaultFixedAmount  = 10.0
	DefaultFixedOutcome = roulette.Black
)

// FixedBettor puts the same amount on the same outcome every round. Its
// stake never moves; only a rounds budget stops it.
type FixedBettor struct {
	bankroll
	amount float64
	target string
}

// NewFixedBettor creates a fixed bettor. Zero or empty arguments fall back
// to 10 on black.
func NewFixedBettor(table *roulette.Table, amount float64, target string) *FixedBettor {
	if amount <= 0 {
		amount = DefaultFixedAmount
	}
	if target == "" {
		target = DefaultFixedOutcome
	}
	return &FixedBettor{
		bankroll: bankroll{table: table},
		amount:   amount,
		target:   target,
	}
}

func (p *FixedBettor) Name() string { return "passenger57" }

// Playing is true outside a session and, inside one, until rounds run out.
func (p *FixedBettor) Playing() bool {
	if p.hasRounds {
		return p.rounds > 0
	}
	return true
}

func (p *FixedBettor) PlaceBets() error {
	o, err := p.outcome(p.target)
	if err != nil {
		return err
	}
	return p.table.PlaceBet(roulette.NewBet(p.amount, o))
}
