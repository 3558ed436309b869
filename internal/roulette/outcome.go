package roulette

import "fmt"

// Outcome is a named bet target with fixed odds. Identity is the name.
type Outcome struct {
	Name string `json:"name"`
	Odds int    `json:"odds"`
	// Prison marks the prison-rule zero: a losing bet on it returns half
	// of what it would have won.
	Prison bool `json:"prison,omitempty"`
}

// NewOutcome creates a plain outcome.
func NewOutcome(name string, odds int) *Outcome {
	return &Outcome{Name: name, Odds: odds}
}

// NewPrisonOutcome creates an outcome tagged with the prison rule.
func NewPrisonOutcome(name string, odds int) *Outcome {
	return &Outcome{Name: name, Odds: odds, Prison: true}
}

// WinAmount returns amount * odds.
func (o *Outcome) WinAmount(amount float64) float64 {
	return amount * float64(o.Odds)
}

// Equal reports whether both outcomes share a name.
func (o *Outcome) Equal(other *Outcome) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Name == other.Name
}

func (o *Outcome) String() string {
	return fmt.Sprintf("%s (odds:%d)", o.Name, o.Odds)
}
