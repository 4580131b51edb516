// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryPointNotFound is the sentinel error wrapped by EntryPointNotFoundError.
	ErrEntryPointNotFound = errors.New("entry point not found")
	// ErrInvalidEntryPoint is the sentinel error wrapped by InvalidEntryPointError.
	ErrInvalidEntryPoint = errors.New("invalid entry point")
	// ErrToolExecution is the sentinel error wrapped by ToolExecutionError.
	ErrToolExecution = errors.New("tool execution failed")
	// ErrRunInterrupted is the sentinel error wrapped by RunInterruptedError.
	ErrRunInterrupted = errors.New("run interrupted while waiting")
)

type (
	// EntryPointNotFoundError is returned when the target entry point cannot
	// be located inside the isolated execution context. Fatal, raised at
	// resolution time, before any unit of concurrency is spawned.
	EntryPointNotFoundError struct {
		EntryPoint string
		Runtime    RuntimeType
	}

	// InvalidEntryPointError is returned when the located target does not
	// expose the required invocable shape. Fatal, raised at resolution time.
	InvalidEntryPointError struct {
		EntryPoint string
		Reason     string
	}

	// ToolExecutionError is returned when the entry point itself terminated
	// abnormally. The original cause is preserved in the unwrap chain.
	ToolExecutionError struct {
		EntryPoint string
		Cause      error
	}

	// RunInterruptedError is returned when the caller's wait was cancelled
	// externally. It is a warning-level outcome: the run terminates, but the
	// spawned work is not forcibly stopped and may complete detached.
	RunInterruptedError struct {
		EntryPoint string
		Cause      error
	}
)

// Error implements the error interface.
func (e *EntryPointNotFoundError) Error() string {
	return fmt.Sprintf("entry point %q not found by %s runtime", e.EntryPoint, e.Runtime)
}

// Unwrap returns ErrEntryPointNotFound so callers can use errors.Is for programmatic detection.
func (e *EntryPointNotFoundError) Unwrap() error { return ErrEntryPointNotFound }

// Error implements the error interface.
func (e *InvalidEntryPointError) Error() string {
	return fmt.Sprintf("entry point %q is not invocable: %s", e.EntryPoint, e.Reason)
}

// Unwrap returns ErrInvalidEntryPoint so callers can use errors.Is for programmatic detection.
func (e *InvalidEntryPointError) Unwrap() error { return ErrInvalidEntryPoint }

// Error implements the error interface.
func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %q terminated abnormally: %v", e.EntryPoint, e.Cause)
}

// Unwrap returns both ErrToolExecution and the original cause so that
// errors.Is detects the class and the wrapped cause stays reachable.
func (e *ToolExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrToolExecution}
	}
	return []error{ErrToolExecution, e.Cause}
}

// Error implements the error interface.
func (e *RunInterruptedError) Error() string {
	return fmt.Sprintf("interrupted while waiting for tool %q: %v", e.EntryPoint, e.Cause)
}

// Unwrap returns both ErrRunInterrupted and the cancellation cause so that
// upstream cancellation checks (errors.Is with context errors) keep working.
func (e *RunInterruptedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRunInterrupted}
	}
	return []error{ErrRunInterrupted, e.Cause}
}
