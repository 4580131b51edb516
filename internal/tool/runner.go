// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"errors"
	"fmt"
	"log/slog"
)

// Runner drives a single tool invocation through its lifecycle: environment
// check, entry-point resolution, isolated execution, and outcome relay.
// Environment assembly and argument building always finish before the
// execution runtime spawns anything; nothing mutates the invocation after
// the spawned work starts.
//
// A Runner holds no per-invocation state, so one Runner may serve
// concurrent Run calls; each call owns its execution context exclusively.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRunner creates a runner over the given runtime registry. A nil logger
// falls back to slog.Default().
func NewRunner(registry *Registry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{registry: registry, logger: logger}
}

// Run executes the tool invocation described by ec on the runtime selected
// by typ, blocking until the spawned work completes or the caller's context
// is cancelled. The returned Result always carries a terminal state; there
// are no retries at this layer.
func (r *Runner) Run(typ RuntimeType, ec *ExecutionContext) *Result {
	state := StateIdle

	if ec.Environment == nil {
		return r.fail(state, NewErrorResult(CodeFailure, errors.New("no environment assembled for invocation")))
	}
	state = r.advance(state, StateEnvironmentBuilt)

	rt, err := r.registry.Get(typ)
	if err != nil {
		return r.fail(state, NewErrorResult(CodeFailure, err))
	}
	if !rt.Available() {
		return r.fail(state, NewErrorResult(CodeFailure,
			fmt.Errorf("runtime '%s' is not available on this system", rt.Name())))
	}

	if err := rt.Validate(ec); err != nil {
		// Resolution failed: no unit of concurrency was spawned.
		code := CodeNotFound
		if errors.Is(err, ErrInvalidEntryPoint) {
			code = CodeNotExecutable
		}
		return r.fail(state, NewErrorResult(code, err))
	}
	state = r.advance(state, StateEntryPointResolved)

	r.logger.Debug("running tool",
		"execution_id", ec.ExecutionID,
		"entry_point", ec.EntryPoint,
		"runtime", rt.Name(),
		"args", ec.Args)
	r.logger.Debug("isolated environment",
		"execution_id", ec.ExecutionID,
		"env_paths", ec.Environment.EnvPaths)

	state = r.advance(state, StateRunning)
	res := rt.Execute(ec)

	switch {
	case errors.Is(res.Error, ErrRunInterrupted):
		r.logger.Warn("interrupted while waiting for tool; spawned work left running",
			"execution_id", ec.ExecutionID,
			"entry_point", ec.EntryPoint,
			"error", res.Error)
		res.State = r.advance(state, StateInterrupted)
	case res.Error != nil:
		res.State = r.advance(state, StateFailed)
	default:
		res.State = r.advance(state, StateCompleted)
	}
	return res
}

// fail finalizes a result in the failed state, recording the state the
// invocation failed from.
func (r *Runner) fail(from State, res *Result) *Result {
	res.State = r.advance(from, StateFailed)
	return res
}

// advance moves the lifecycle forward, panicking on an illegal edge. Edges
// are fixed at compile time, so a violation is a programming error rather
// than a runtime condition.
func (r *Runner) advance(from, to State) State {
	if !from.CanTransitionTo(to) {
		panic(fmt.Sprintf("illegal invocation state transition %s -> %s", from, to))
	}
	return to
}
