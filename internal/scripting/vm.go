// Package scripting runs user-written JavaScript betting strategies in a
// sandboxed goja runtime.
package scripting

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// ErrTimeout is returned when a script call runs past its deadline.
var ErrTimeout = errors.New("script timed out")

// VM wraps a goja runtime with sandbox restrictions and global function injection.
type VM struct {
	runtime *goja.Runtime
	mu      sync.Mutex
	logger  *zap.Logger

	callTimeout time.Duration

	// stopRequested is set when the script calls stop().
	stopRequested bool
}

const (
	scriptInitTimeout  = 2 * time.Second
	DefaultCallTimeout = 1 * time.Second
)

// Compile parses source once so every session can run it in a fresh VM.
func Compile(name, source string) (*goja.Program, error) {
	prog, err := goja.Compile(name, source, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return prog, nil
}

// NewVM creates a sandboxed goja runtime with global functions injected.
// A zero callTimeout means DefaultCallTimeout.
func NewVM(logger *zap.Logger, callTimeout time.Duration) *VM {
	if logger == nil {
		logger = zap.NewNop()
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	vm := &VM{
		runtime:     goja.New(),
		logger:      logger,
		callTimeout: callTimeout,
	}
	vm.injectGlobalFunctions()
	injectConstants(vm.runtime)
	return vm
}

// injectGlobalFunctions registers log, console.log and stop.
func (vm *VM) injectGlobalFunctions() {
	// log(...args) goes to the debug log
	vm.runtime.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		vm.logger.Debug("script log", zap.String("message", strings.Join(parts, " ")))
		return goja.Undefined()
	})

	console := vm.runtime.NewObject()
	console.Set("log", vm.runtime.Get("log"))
	vm.runtime.Set("console", console)

	// stop() ends the session after the current call
	vm.runtime.Set("stop", func(call goja.FunctionCall) goja.Value {
		vm.stopRequested = true
		return goja.Undefined()
	})

	// Block dangerous globals.
	vm.runtime.Set("require", goja.Undefined())
	vm.runtime.Set("fetch", goja.Undefined())
	vm.runtime.Set("XMLHttpRequest", goja.Undefined())
	vm.runtime.Set("eval", goja.Undefined())
	vm.runtime.Set("Function", goja.Undefined())
}

// Execute runs a compiled script. Call it once per session, before the
// first dobet().
func (vm *VM) Execute(prog *goja.Program) error {
	return vm.runWithTimeout(scriptInitTimeout, func() error {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		if _, err := vm.runtime.RunProgram(prog); err != nil {
			return fmt.Errorf("script execution error: %w", err)
		}
		return nil
	})
}

// HasFunc reports whether the script defined a global function name.
func (vm *VM) HasFunc(name string) bool {
	fn := vm.runtime.Get(name)
	if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
		return false
	}
	_, ok := goja.AssertFunction(fn)
	return ok
}

// CallDobet calls the user-defined dobet() function.
func (vm *VM) CallDobet() error {
	return vm.runWithTimeout(vm.callTimeout, func() error {
		vm.mu.Lock()
		defer vm.mu.Unlock()

		fn := vm.runtime.Get("dobet")
		if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
			return fmt.Errorf("dobet() function is not defined")
		}

		callable, ok := goja.AssertFunction(fn)
		if !ok {
			return fmt.Errorf("dobet is not a function")
		}

		if _, err := callable(goja.Undefined()); err != nil {
			return fmt.Errorf("dobet() error: %w", err)
		}
		return nil
	})
}

// IsStopRequested returns true if stop() was called from the script.
func (vm *VM) IsStopRequested() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.stopRequested
}

// SetVariables pushes the current variable state into the JS runtime.
func (vm *VM) SetVariables(vars *Variables) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	injectVariables(vm.runtime, vars)
}

// SyncVariables reads mutable variables back from the JS runtime.
func (vm *VM) SyncVariables(vars *Variables) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	syncFromVM(vm.runtime, vars)
}

// runWithTimeout interrupts fn once timeout passes and always waits for it
// to return, so no goroutine outlives the call.
func (vm *VM) runWithTimeout(timeout time.Duration, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		vm.runtime.Interrupt("script execution timeout")
		err := <-done
		vm.runtime.ClearInterrupt()
		if err != nil {
			return fmt.Errorf("%w after %s: %v", ErrTimeout, timeout, err)
		}
		return fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
}
