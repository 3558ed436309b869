package roulette

import (
	"fmt"

	"github.com/MJE43/roulette-sim/internal/rng"
)

const (
	// BinCount is the number of pockets: 0-36 plus 00.
	BinCount = 38
	// DoubleZero is the bin index of the 00 pocket.
	DoubleZero = 37
)

// Rules selects the wheel layout variant.
type Rules string

const (
	RulesDefault Rules = "default"
	RulesPrison  Rules = "prison"
)

// Wheel owns the 38 bins, the registry of every distinct outcome and the
// random source used to pick a winning bin.
type Wheel struct {
	rules    Rules
	bins     [BinCount]*Bin
	registry map[string]*Outcome
	order    []*Outcome
	src      rng.Source
}

// NewWheel builds a wheel for the given rules. Unknown rules leave every bin
// empty. A nil source is replaced with an entropy-seeded one.
func NewWheel(rules Rules, src rng.Source) *Wheel {
	if src == nil {
		src = rng.NewEntropySource("wheel")
	}
	w := &Wheel{
		rules:    rules,
		registry: make(map[string]*Outcome),
		src:      src,
	}
	for i := range w.bins {
		w.bins[i] = NewBin()
	}
	if b := BuilderFor(rules); b != nil {
		b.BuildBins(w)
	}
	return w
}

// NewSeededWheel is NewWheel with a reproducible source derived from seed.
func NewSeededWheel(rules Rules, seed int64) *Wheel {
	return NewWheel(rules, rng.NewSeededSource(seed, "wheel"))
}

// Rules returns the variant the wheel was built with.
func (w *Wheel) Rules() Rules {
	return w.rules
}

// AddOutcome puts o into bin idx. Outcomes are interned by name: the first
// instance registered under a name is the one stored in every bin.
func (w *Wheel) AddOutcome(idx int, o *Outcome) {
	checkIndex(idx)
	if known, ok := w.registry[o.Name]; ok {
		o = known
	} else {
		w.registry[o.Name] = o
		w.order = append(w.order, o)
	}
	w.bins[idx].add(o)
}

// SetBin replaces bin idx and registers its outcomes.
func (w *Wheel) SetBin(idx int, b *Bin) {
	checkIndex(idx)
	for _, o := range b.Outcomes() {
		if _, ok := w.registry[o.Name]; !ok {
			w.registry[o.Name] = o
			w.order = append(w.order, o)
		}
	}
	w.bins[idx] = b
}

// Next selects the winning bin uniformly from the wheel's pockets: [0, 37]
// under default rules, [0, 36] under prison rules where 00 does not exist.
func (w *Wheel) Next() *Bin {
	return w.bins[w.src.Intn(w.Pockets())]
}

// Pockets returns the number of bins Next draws from.
func (w *Wheel) Pockets() int {
	if w.rules == RulesPrison {
		return DoubleZero
	}
	return BinCount
}

// Bin returns the bin at idx.
func (w *Wheel) Bin(idx int) *Bin {
	checkIndex(idx)
	return w.bins[idx]
}

// Bins returns all bins in index order.
func (w *Wheel) Bins() []*Bin {
	out := make([]*Bin, BinCount)
	copy(out, w.bins[:])
	return out
}

// Outcome looks up a registered outcome. The boolean is false on a miss.
func (w *Wheel) Outcome(name string) (*Outcome, bool) {
	o, ok := w.registry[name]
	return o, ok
}

// Outcomes returns every registered outcome in registration order.
func (w *Wheel) Outcomes() []*Outcome {
	out := make([]*Outcome, len(w.order))
	copy(out, w.order)
	return out
}

func checkIndex(idx int) {
	if idx < 0 || idx >= BinCount {
		panic(fmt.Sprintf("roulette: bin index %d out of range [0,%d)", idx, BinCount))
	}
}
