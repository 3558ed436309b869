package roulette

import (
	"sort"
	"strings"
)

// Bin is one pocket of the wheel: the set of outcomes that win together.
// Membership is keyed by outcome name. Bins are filled while the wheel is
// built and are read-only afterwards.
type Bin struct {
	outcomes map[string]*Outcome
}

// NewBin creates a bin holding the given outcomes. Later outcomes with a
// name already present are ignored.
func NewBin(outcomes ...*Outcome) *Bin {
	b := &Bin{outcomes: make(map[string]*Outcome, len(outcomes))}
	for _, o := range outcomes {
		b.add(o)
	}
	return b
}

func (b *Bin) add(o *Outcome) {
	if _, ok := b.outcomes[o.Name]; ok {
		return
	}
	b.outcomes[o.Name] = o
}

// Contains reports whether an outcome with the same name is in the bin.
func (b *Bin) Contains(o *Outcome) bool {
	if o == nil {
		return false
	}
	_, ok := b.outcomes[o.Name]
	return ok
}

// Outcome looks up a member by name.
func (b *Bin) Outcome(name string) (*Outcome, bool) {
	o, ok := b.outcomes[name]
	return o, ok
}

// Len returns the number of outcomes in the bin.
func (b *Bin) Len() int {
	return len(b.outcomes)
}

// Outcomes returns the members sorted by name.
func (b *Bin) Outcomes() []*Outcome {
	out := make([]*Outcome, 0, len(b.outcomes))
	for _, o := range b.outcomes {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Equal reports whether both bins hold the same outcome names.
func (b *Bin) Equal(other *Bin) bool {
	if b.Len() != other.Len() {
		return false
	}
	for name := range b.outcomes {
		if _, ok := other.outcomes[name]; !ok {
			return false
		}
	}
	return true
}

func (b *Bin) String() string {
	names := make([]string, 0, len(b.outcomes))
	for _, o := range b.Outcomes() {
		names = append(names, o.Name)
	}
	return "{" + strings.Join(names, ", ") + "}"
}
