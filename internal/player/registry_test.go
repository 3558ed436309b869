package player

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	opts := Options{Script: "nextbet = 1\ndobet = function() {}"}
	tests := []struct {
		name string
		want string
	}{
		{"passenger57", "passenger57"},
		{"fixed", "passenger57"},
		{"martingale", "martingale"},
		{"SevenReds", "sevenreds"},
		{"waitforstreak", "sevenreds"},
		{"random", "random"},
		{"script", "script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name, newSeededGame(100, 1).Table(), opts)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.name, err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("labouchere", newSeededGame(100, 1).Table(), Options{})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"martingale", "passenger57", "random", "script", "sevenreds"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
