package scripting

import (
	"errors"
	"testing"
	"time"

	"github.com/MJE43/roulette-sim/internal/stats"
)

func run(t *testing.T, vm *VM, source string) {
	t.Helper()
	prog, err := Compile("test.js", source)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := vm.Execute(prog); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestVariablesRoundTrip(t *testing.T) {
	vm := NewVM(nil, 0)
	s := stats.NewSession(50)
	s.RecordBet(4, 0, false)
	vars := NewVariables(s)
	vars.Stake = 46
	vars.PreviousBet = 4
	vm.SetVariables(vars)

	run(t, vm, `
		dobet = function() {
			nextbet = previousbet * 2 + losses
			outcome = (stake > 40) ? RED : BLACK
		}
	`)
	if err := vm.CallDobet(); err != nil {
		t.Fatalf("CallDobet: %v", err)
	}
	vm.SyncVariables(vars)

	if vars.NextBet != 9 {
		t.Errorf("nextbet = %g, want 9", vars.NextBet)
	}
	if vars.Outcome != "red" {
		t.Errorf("outcome = %q, want red", vars.Outcome)
	}
}

func TestUndeclaredGlobalAssignment(t *testing.T) {
	vm := NewVM(nil, 0)
	vars := NewVariables(stats.NewSession(10))
	vm.SetVariables(vars)
	run(t, vm, `
		streak = 0
		dobet = function() { streak++; nextbet = streak }
	`)
	if !vm.HasFunc("dobet") {
		t.Fatal("dobet assigned without a declaration should be defined")
	}
	for i := 0; i < 2; i++ {
		if err := vm.CallDobet(); err != nil {
			t.Fatalf("CallDobet: %v", err)
		}
	}
	vm.SyncVariables(vars)
	if vars.NextBet != 2 {
		t.Errorf("nextbet = %g, want 2", vars.NextBet)
	}
}

func TestReadOnlyVariablesNotSynced(t *testing.T) {
	vm := NewVM(nil, 0)
	vars := NewVariables(stats.NewSession(10))
	vm.SetVariables(vars)
	run(t, vm, `stake = 1e9; dobet = function() {}`)
	vm.SyncVariables(vars)
	if vars.Stake != 10 {
		t.Errorf("stake changed to %g", vars.Stake)
	}
}

func TestStop(t *testing.T) {
	vm := NewVM(nil, 0)
	run(t, vm, `dobet = function() { stop() }`)
	if vm.IsStopRequested() {
		t.Fatal("stop requested before dobet ran")
	}
	if err := vm.CallDobet(); err != nil {
		t.Fatal(err)
	}
	if !vm.IsStopRequested() {
		t.Error("expected stop request")
	}
}

func TestSandbox(t *testing.T) {
	vm := NewVM(nil, 0)
	for _, src := range []string{
		`require('fs')`,
		`eval('1')`,
		`Function('return 1')()`,
	} {
		prog, err := Compile("sandbox.js", src)
		if err != nil {
			t.Fatal(err)
		}
		if err := vm.Execute(prog); err == nil {
			t.Errorf("%s should fail in the sandbox", src)
		}
	}
}

func TestCallTimeout(t *testing.T) {
	vm := NewVM(nil, 20*time.Millisecond)
	run(t, vm, `dobet = function() { for (;;) {} }`)

	start := time.Now()
	err := vm.CallDobet()
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("timeout took %s", time.Since(start))
	}

	// The runtime stays usable after an interrupt.
	run(t, vm, `dobet = function() { nextbet = 3 }`)
	if err := vm.CallDobet(); err != nil {
		t.Errorf("CallDobet after timeout: %v", err)
	}
}

func TestDobetMissing(t *testing.T) {
	vm := NewVM(nil, 0)
	if vm.HasFunc("dobet") {
		t.Fatal("fresh VM should not have dobet")
	}
	if err := vm.CallDobet(); err == nil {
		t.Error("expected error calling undefined dobet")
	}
}
