package player

import (
	"math"

	"github.com/MJE43/roulette-sim/internal/roulette"
)

// DefaultStreak is the run of reds WaitForStreak waits for.
const DefaultStreak = 7

// Martingale bets on black, doubling after every loss and going back to one
// unit after a win.
type Martingale struct {
	bankroll
	target    string
	lossCount int
}

// NewMartingale creates a Martingale player on black.
func NewMartingale(table *roulette.Table) *Martingale {
	return &Martingale{
		bankroll: bankroll{table: table},
		target:   roulette.Black,
	}
}

func (m *Martingale) Name() string { return "martingale" }

// LossCount returns the current losing streak.
func (m *Martingale) LossCount() int { return m.lossCount }

func (m *Martingale) Reset() {
	m.bankroll.Reset()
	m.lossCount = 0
}

// NextAmount returns min(2^losses, table limit, stake).
func (m *Martingale) NextAmount() float64 {
	return m.maxBet(math.Pow(2, float64(m.lossCount)))
}

func (m *Martingale) PlaceBets() error {
	o, err := m.outcome(m.target)
	if err != nil {
		return err
	}
	amount := m.NextAmount()
	if amount <= 0 {
		return nil
	}
	return m.place(o, amount)
}

func (m *Martingale) Win(bet *roulette.Bet) float64 {
	m.lossCount = 0
	return m.settleWin(bet)
}

func (m *Martingale) Lose(bet *roulette.Bet) float64 {
	m.lossCount++
	return m.settleLoss(bet)
}

// WaitForStreak is a Martingale that sits out until it has seen a run of
// reds, then bets black.
type WaitForStreak struct {
	Martingale
	streak   int
	redCount int
	red      *roulette.Outcome
}

// NewWaitForStreak creates a player that waits for streak reds in a row.
// A non-positive streak means DefaultStreak.
func NewWaitForStreak(table *roulette.Table, streak int) *WaitForStreak {
	if streak <= 0 {
		streak = DefaultStreak
	}
	return &WaitForStreak{
		Martingale: *NewMartingale(table),
		streak:     streak,
		red:        roulette.NewOutcome(roulette.Red, roulette.EvenMoneyOdds),
	}
}

func (w *WaitForStreak) Name() string { return "sevenreds" }

// RedCount returns the current run of red winning bins.
func (w *WaitForStreak) RedCount() int { return w.redCount }

func (w *WaitForStreak) Reset() {
	w.Martingale.Reset()
	w.redCount = 0
}

func (w *WaitForStreak) PlaceBets() error {
	if w.redCount < w.streak {
		return nil
	}
	return w.Martingale.PlaceBets()
}

func (w *WaitForStreak) Winners(bin *roulette.Bin) {
	w.Martingale.Winners(bin)
	if bin.Contains(w.red) {
		w.redCount++
	} else {
		w.redCount = 0
	}
}
