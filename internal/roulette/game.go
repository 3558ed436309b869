package roulette

import "fmt"

// Player is the capability set the game drives every round.
type Player interface {
	// Playing reports whether the player still wants to bet.
	Playing() bool
	// PlaceBets puts this round's bets on the table.
	PlaceBets() error
	// Win settles a winning bet and returns its value.
	Win(b *Bet) float64
	// Lose settles a losing bet and returns its value.
	Lose(b *Bet) float64
	// Winners is told the winning bin of every round, bet or not.
	Winners(bin *Bin)
}

// RoundResult summarises one resolved round.
type RoundResult struct {
	Winner *Bin
	// Total is the sum of the Win and Lose values of every resolved bet.
	Total float64
	Bets  int
	Wins  int
}

// Game runs single rounds against one table.
type Game struct {
	table *Table
}

// NewGame creates a game for table.
func NewGame(table *Table) *Game {
	return &Game{table: table}
}

// Table returns the game's table.
func (g *Game) Table() *Table {
	return g.table
}

// PlayRound takes bets from p if it is playing, spins the wheel, notifies p
// of the winning bin, resolves every bet on the table and clears it.
func (g *Game) PlayRound(p Player) (RoundResult, error) {
	if p.Playing() {
		if err := p.PlaceBets(); err != nil {
			g.table.Clear()
			return RoundResult{}, fmt.Errorf("place bets: %w", err)
		}
	}

	winner := g.table.Wheel().Next()
	p.Winners(winner)

	res := RoundResult{Winner: winner}
	for _, b := range g.table.bets {
		res.Bets++
		if winner.Contains(b.Outcome) {
			res.Wins++
			res.Total += p.Win(b)
		} else {
			res.Total += p.Lose(b)
		}
	}

	g.table.Clear()
	return res, nil
}
