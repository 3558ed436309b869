package player

import "github.com/MJE43/roulette-sim/internal/roulette"

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

// newScriptedGame builds a default-rules game whose wheel lands on seq.
func newScriptedGame(limit float64, seq ...int) *roulette.Game {
	w := roulette.NewWheel(roulette.RulesDefault, &sequenceSource{seq: seq})
	return roulette.NewGame(roulette.NewTable(limit, w))
}

func newSeededGame(limit float64, seed int64) *roulette.Game {
	return roulette.NewGame(roulette.NewTable(limit, roulette.NewSeededWheel(roulette.RulesDefault, seed)))
}
