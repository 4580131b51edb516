// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/bubblesly/kite/pkg/toolreg"
)

// registryWith builds a runtime registry whose in-process runtime uses the
// given entry points.
func registryWith(entries toolreg.MapRegistry) *Registry {
	return BuildRegistry(BuildRegistryOptions{EntryPoints: entries})
}

func TestRunnerCompletedState(t *testing.T) {
	t.Parallel()

	reg := registryWith(toolreg.MapRegistry{
		"tool": func(args []string) error { return nil },
	})

	res := NewRunner(reg, nil).Run(RuntimeTypeInProcess, NewExecutionContext("tool", nil, testEnvironment()))
	if res.State != StateCompleted {
		t.Errorf("State = %s, want %s", res.State, StateCompleted)
	}
	if !res.Success() {
		t.Errorf("Result = %+v, want success", res)
	}
}

func TestRunnerFailedStateWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("tool exploded")
	reg := registryWith(toolreg.MapRegistry{
		"tool": func(args []string) error { return cause },
	})

	res := NewRunner(reg, nil).Run(RuntimeTypeInProcess, NewExecutionContext("tool", nil, testEnvironment()))
	if res.State != StateFailed {
		t.Errorf("State = %s, want %s", res.State, StateFailed)
	}
	if !errors.Is(res.Error, ErrToolExecution) || !errors.Is(res.Error, cause) {
		t.Errorf("Failed result lost the error chain: %v", res.Error)
	}
}

func TestRunnerResolutionFailureSpawnsNothing(t *testing.T) {
	t.Parallel()

	var spawned atomic.Bool
	reg := registryWith(toolreg.MapRegistry{
		"watcher": func(args []string) error {
			spawned.Store(true)
			return nil
		},
		"wrong": 42,
	})
	runner := NewRunner(reg, nil)

	res := runner.Run(RuntimeTypeInProcess, NewExecutionContext("absent", nil, testEnvironment()))
	if res.State != StateFailed {
		t.Errorf("State = %s, want %s", res.State, StateFailed)
	}
	if !errors.Is(res.Error, ErrEntryPointNotFound) {
		t.Errorf("error does not wrap ErrEntryPointNotFound: %v", res.Error)
	}
	if res.ExitCode != CodeNotFound {
		t.Errorf("ExitCode = %d, want %d", res.ExitCode, CodeNotFound)
	}

	res = runner.Run(RuntimeTypeInProcess, NewExecutionContext("wrong", nil, testEnvironment()))
	if !errors.Is(res.Error, ErrInvalidEntryPoint) {
		t.Errorf("error does not wrap ErrInvalidEntryPoint: %v", res.Error)
	}
	if res.ExitCode != CodeNotExecutable {
		t.Errorf("ExitCode = %d, want %d", res.ExitCode, CodeNotExecutable)
	}

	if spawned.Load() {
		t.Error("a unit of concurrency ran despite resolution failure")
	}
}

func TestRunnerMissingEnvironment(t *testing.T) {
	t.Parallel()

	reg := registryWith(toolreg.MapRegistry{})
	ec := NewExecutionContext("tool", nil, nil)

	res := NewRunner(reg, nil).Run(RuntimeTypeInProcess, ec)
	if res.State != StateFailed || res.Error == nil {
		t.Errorf("Result = %+v, want failed with error", res)
	}
}

func TestRunnerUnknownRuntime(t *testing.T) {
	t.Parallel()

	reg := registryWith(toolreg.MapRegistry{})
	res := NewRunner(reg, nil).Run(RuntimeType("hypervisor"), NewExecutionContext("tool", nil, testEnvironment()))
	if res.State != StateFailed || res.Error == nil {
		t.Errorf("Result = %+v, want failed with error", res)
	}
}

func TestRunnerInterruptedState(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	reg := registryWith(toolreg.MapRegistry{
		"tool": func(args []string) error {
			close(started)
			<-release
			return nil
		},
	})
	t.Cleanup(func() { close(release) })

	cancelCtx, cancel := context.WithCancel(context.Background())
	ec := NewExecutionContext("tool", nil, testEnvironment())
	ec.Context = cancelCtx

	go func() {
		<-started
		cancel()
	}()

	res := NewRunner(reg, nil).Run(RuntimeTypeInProcess, ec)
	if res.State != StateInterrupted {
		t.Errorf("State = %s, want %s", res.State, StateInterrupted)
	}
	if !errors.Is(res.Error, ErrRunInterrupted) {
		t.Errorf("error does not wrap ErrRunInterrupted: %v", res.Error)
	}
	// The interrupted outcome still reports a terminal state; the detached
	// goroutine is released by the cleanup above.
	if !res.State.IsTerminal() {
		t.Error("interrupted state is not terminal")
	}
}

func TestBuildRegistryRegistersAllRuntimes(t *testing.T) {
	t.Parallel()

	reg := BuildRegistry(BuildRegistryOptions{})
	for _, typ := range []RuntimeType{RuntimeTypeSubprocess, RuntimeTypeInProcess, RuntimeTypeShell} {
		rt, err := reg.Get(typ)
		if err != nil {
			t.Errorf("Get(%s) error: %v", typ, err)
			continue
		}
		if !rt.Available() {
			t.Errorf("runtime %s reports unavailable", typ)
		}
	}
	if got := len(reg.Available()); got != 3 {
		t.Errorf("Available() returned %d runtimes, want 3", got)
	}
}
