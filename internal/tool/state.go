// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"errors"
	"fmt"
)

const (
	// StateIdle is the initial state of every invocation.
	StateIdle State = "idle"
	// StateEnvironmentBuilt means the isolated environment lists exist.
	StateEnvironmentBuilt State = "environment_built"
	// StateEntryPointResolved means the entry point was located and has the
	// required invocable shape.
	StateEntryPointResolved State = "entry_point_resolved"
	// StateRunning means the dedicated unit of concurrency has started.
	StateRunning State = "running"
	// StateCompleted is the terminal state of a run that finished normally.
	StateCompleted State = "completed"
	// StateFailed is the terminal state of a run that failed at any step.
	StateFailed State = "failed"
	// StateInterrupted is the terminal state of a run whose wait was
	// cancelled externally. The spawned work may still be running detached.
	StateInterrupted State = "interrupted_while_waiting"
)

// ErrInvalidState is the sentinel error wrapped by InvalidStateError.
var ErrInvalidState = errors.New("invalid invocation state")

type (
	// State is one phase of the per-invocation lifecycle.
	State string

	// InvalidStateError is returned when a State value is not one of the
	// defined lifecycle phases.
	InvalidStateError struct {
		Value State
	}
)

// transitions holds the legal lifecycle edges. Failure is reachable from
// every non-terminal state; interruption only from a running wait.
var transitions = map[State][]State{
	StateIdle:               {StateEnvironmentBuilt, StateFailed},
	StateEnvironmentBuilt:   {StateEntryPointResolved, StateFailed},
	StateEntryPointResolved: {StateRunning, StateFailed},
	StateRunning:            {StateCompleted, StateFailed, StateInterrupted},
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid invocation state %q", e.Value)
}

// Unwrap returns ErrInvalidState so callers can use errors.Is for programmatic detection.
func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// String returns the string representation of the State.
func (s State) String() string { return string(s) }

// Validate returns nil if the State is one of the defined lifecycle phases.
func (s State) Validate() error {
	switch s {
	case StateIdle, StateEnvironmentBuilt, StateEntryPointResolved,
		StateRunning, StateCompleted, StateFailed, StateInterrupted:
		return nil
	default:
		return &InvalidStateError{Value: s}
	}
}

// IsTerminal returns true for states with no outgoing transitions.
func (s State) IsTerminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateInterrupted:
		return true
	default:
		return false
	}
}

// CanTransitionTo returns whether the lifecycle permits moving to next.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
