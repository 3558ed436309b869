package player

import (
	"github.com/MJE43/roulette-sim/internal/rng"
	"github.com/MJE43/roulette-sim/internal/roulette"
)

// RandomBettor stakes as much as the table allows on one outcome picked
// uniformly from the wheel's registry. It draws from its own source.
type RandomBettor struct {
	bankroll
	src *rng.Mulberry32
}

// NewRandomBettor creates a random bettor seeded with seed.
func NewRandomBettor(table *roulette.Table, seed uint32) *RandomBettor {
	return &RandomBettor{
		bankroll: bankroll{table: table},
		src:      rng.NewMulberry32(seed),
	}
}

func (r *RandomBettor) Name() string { return "random" }

func (r *RandomBettor) PlaceBets() error {
	outcomes := r.table.Wheel().Outcomes()
	if len(outcomes) == 0 {
		return ErrUnknownOutcome
	}
	o := outcomes[r.src.Intn(len(outcomes))]
	amount := r.maxBet(r.stake)
	if amount <= 0 {
		return nil
	}
	return r.place(o, amount)
}

func (r *RandomBettor) Win(bet *roulette.Bet) float64 {
	return r.settleWin(bet)
}

func (r *RandomBettor) Lose(bet *roulette.Bet) float64 {
	return r.settleLoss(bet)
}
