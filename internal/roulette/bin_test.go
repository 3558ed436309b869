package roulette

import "testing"

func TestBinMembership(t *testing.T) {
	zero := NewOutcome("0", 35)
	dzero := NewOutcome("00", 35)

	b := NewBin(zero, dzero)
	if !b.Contains(zero) || !b.Contains(dzero) {
		t.Fatal("bin should contain both outcomes")
	}
	if !b.Contains(NewOutcome("0", 35)) {
		t.Error("membership should be by name")
	}
	if b.Contains(NewOutcome("1", 35)) {
		t.Error("unexpected member")
	}
}

func TestBinSetSemantics(t *testing.T) {
	b := NewBin(NewOutcome("red", 1), NewOutcome("red", 1), NewOutcome("odd", 1))
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestOutcomeInMultipleBins(t *testing.T) {
	o := NewOutcome("0", 35)
	b1 := NewBin(o)
	b2 := NewBin(o)
	if !b1.Contains(o) || !b2.Contains(o) {
		t.Error("an outcome may belong to several bins")
	}
}

func TestBinOutcomesSorted(t *testing.T) {
	b := NewBin(NewOutcome("red", 1), NewOutcome("1", 35), NewOutcome("odd", 1))
	got := b.Outcomes()
	want := []string{"1", "odd", "red"}
	for i, o := range got {
		if o.Name != want[i] {
			t.Fatalf("Outcomes()[%d] = %s, want %s", i, o.Name, want[i])
		}
	}
	if b.String() != "{1, odd, red}" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestBinEqual(t *testing.T) {
	a := NewBin(NewOutcome("red", 1), NewOutcome("1", 35))
	b := NewBin(NewOutcome("1", 35), NewOutcome("red", 1))
	c := NewBin(NewOutcome("1", 35))
	if !a.Equal(b) {
		t.Error("bins with the same names should be equal")
	}
	if a.Equal(c) {
		t.Error("bins with different members should differ")
	}
}
