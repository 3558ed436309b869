package roulette

// sequenceSource replays fixed bin indices, then repeats the last one.
type sequenceSource struct {
	seq []int
	pos int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.seq[len(s.seq)-1]
	if s.pos < len(s.seq) {
		v = s.seq[s.pos]
		s.pos++
	}
	return v % n
}

// recordingPlayer bets a fixed list every round and records what the game
// reports back.
type recordingPlayer struct {
	table   *Table
	bets    []*Bet
	playing bool
	wins    []*Bet
	losses  []*Bet
	winners []*Bin
}

func (p *recordingPlayer) Playing() bool { return p.playing }

func (p *recordingPlayer) PlaceBets() error {
	for _, b := range p.bets {
		if err := p.table.PlaceBet(b); err != nil {
			return err
		}
	}
	return nil
}

func (p *recordingPlayer) Win(b *Bet) float64 {
	p.wins = append(p.wins, b)
	return b.WinAmount()
}

func (p *recordingPlayer) Lose(b *Bet) float64 {
	p.losses = append(p.losses, b)
	return 0
}

func (p *recordingPlayer) Winners(bin *Bin) {
	p.winners = append(p.winners, bin)
}
