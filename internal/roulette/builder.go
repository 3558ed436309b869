package roulette

import (
	"fmt"
	"strconv"
	"strings"
)

// Payout odds per bet category.
const (
	StraightOdds  = 35
	SplitOdds     = 17
	StreetOdds    = 11
	CornerOdds    = 8
	LineOdds      = 5
	DozenOdds     = 2
	ColumnOdds    = 2
	EvenMoneyOdds = 1
	FiveBetOdds   = 6
	FourBetOdds   = 6
)

const (
	rows    = 12
	columns = 3
)

// Names of the even-money and zero-group outcomes.
const (
	Red     = "red"
	Black   = "black"
	Even    = "even"
	Odd     = "odd"
	Low     = "low"
	High    = "high"
	FiveBet = "00-0-1-2-3"
	FourBet = "0-1-2-3"
)

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// IsRed reports whether n is one of the 18 red numbers.
func IsRed(n int) bool {
	return redNumbers[n]
}

// BinBuilder populates a wheel's bins with every outcome they can win.
type BinBuilder interface {
	BuildBins(w *Wheel)
}

// variant holds the two steps the rule variants disagree on. Every other
// category is shared.
type variant interface {
	straightBets(w *Wheel)
	zeroBets(w *Wheel)
}

func buildBins(w *Wheel, v variant) {
	v.straightBets(w)
	addSplitBets(w)
	addStreetBets(w)
	addCornerBets(w)
	addLineBets(w)
	addDozenBets(w)
	addColumnBets(w)
	addEvenMoneyBets(w)
	v.zeroBets(w)
}

// DefaultBuilder builds the double-zero layout with the five-bet.
type DefaultBuilder struct{}

// BuildBins implements BinBuilder.
func (b DefaultBuilder) BuildBins(w *Wheel) {
	buildBins(w, b)
}

// straightBets gives every number 0-36 its own outcome and 00 one at index 37.
func (DefaultBuilder) straightBets(w *Wheel) {
	for n := 0; n <= 36; n++ {
		w.AddOutcome(n, NewOutcome(strconv.Itoa(n), StraightOdds))
	}
	w.AddOutcome(DoubleZero, NewOutcome("00", StraightOdds))
}

func (DefaultBuilder) zeroBets(w *Wheel) {
	five := NewOutcome(FiveBet, FiveBetOdds)
	for _, idx := range []int{DoubleZero, 0, 1, 2, 3} {
		w.AddOutcome(idx, five)
	}
}

// PrisonBuilder builds the single-zero layout: zero is a prison outcome and
// the four-bet replaces the five-bet.
type PrisonBuilder struct{}

// BuildBins implements BinBuilder.
func (b PrisonBuilder) BuildBins(w *Wheel) {
	buildBins(w, b)
}

func (PrisonBuilder) straightBets(w *Wheel) {
	w.AddOutcome(0, NewPrisonOutcome("0", StraightOdds))
	for n := 1; n <= 36; n++ {
		w.AddOutcome(n, NewOutcome(strconv.Itoa(n), StraightOdds))
	}
}

func (PrisonBuilder) zeroBets(w *Wheel) {
	four := NewOutcome(FourBet, FourBetOdds)
	for idx := 0; idx <= 3; idx++ {
		w.AddOutcome(idx, four)
	}
}

// BuilderFor returns the builder for rules, or nil when rules is unknown.
func BuilderFor(rules Rules) BinBuilder {
	switch rules {
	case RulesDefault:
		return DefaultBuilder{}
	case RulesPrison:
		return PrisonBuilder{}
	default:
		return nil
	}
}

// addGroup creates one outcome named after its numbers and adds it to each.
func addGroup(w *Wheel, odds int, numbers ...int) {
	o := NewOutcome(groupName(numbers...), odds)
	for _, n := range numbers {
		w.AddOutcome(n, o)
	}
}

func groupName(numbers ...int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// addSplitBets pairs each number with its right neighbour (columns 1 and 2)
// and with the number below it (rows 1-11).
func addSplitBets(w *Wheel) {
	for r := 0; r < rows; r++ {
		for c := 1; c < columns; c++ {
			n := columns*r + c
			addGroup(w, SplitOdds, n, n+1)
		}
	}
	for n := 1; n <= 33; n++ {
		addGroup(w, SplitOdds, n, n+3)
	}
}

func addStreetBets(w *Wheel) {
	for r := 0; r < rows; r++ {
		n := columns*r + 1
		addGroup(w, StreetOdds, n, n+1, n+2)
	}
}

// addCornerBets adds the two 2x2 blocks anchored in each of the first 11 rows.
func addCornerBets(w *Wheel) {
	for r := 0; r < rows-1; r++ {
		for c := 1; c < columns; c++ {
			n := columns*r + c
			addGroup(w, CornerOdds, n, n+1, n+3, n+4)
		}
	}
}

func addLineBets(w *Wheel) {
	for r := 0; r < rows-1; r++ {
		n := columns*r + 1
		addGroup(w, LineOdds, n, n+1, n+2, n+3, n+4, n+5)
	}
}

func addDozenBets(w *Wheel) {
	for d := 0; d < 3; d++ {
		o := NewOutcome(fmt.Sprintf("dozen(%d)", d+1), DozenOdds)
		for m := 0; m < 12; m++ {
			w.AddOutcome(12*d+m+1, o)
		}
	}
}

func addColumnBets(w *Wheel) {
	for c := 0; c < columns; c++ {
		o := NewOutcome(fmt.Sprintf("column(%d)", c), ColumnOdds)
		for r := 0; r < rows; r++ {
			w.AddOutcome(columns*r+c+1, o)
		}
	}
}

// addEvenMoneyBets covers 1-36 only; neither zero pocket wins these.
func addEvenMoneyBets(w *Wheel) {
	red := NewOutcome(Red, EvenMoneyOdds)
	black := NewOutcome(Black, EvenMoneyOdds)
	even := NewOutcome(Even, EvenMoneyOdds)
	odd := NewOutcome(Odd, EvenMoneyOdds)
	low := NewOutcome(Low, EvenMoneyOdds)
	high := NewOutcome(High, EvenMoneyOdds)

	for n := 1; n <= 36; n++ {
		if n < 19 {
			w.AddOutcome(n, low)
		} else {
			w.AddOutcome(n, high)
		}
		if n%2 == 0 {
			w.AddOutcome(n, even)
		} else {
			w.AddOutcome(n, odd)
		}
		if IsRed(n) {
			w.AddOutcome(n, red)
		} else {
			w.AddOutcome(n, black)
		}
	}
}
