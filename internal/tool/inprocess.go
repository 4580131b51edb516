// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"errors"
	"fmt"

	"github.com/bubblesly/kite/pkg/toolreg"
)

// InProcessRuntime resolves entry points through a toolreg.Registry and runs
// them on a dedicated goroutine. Isolation is by construction: the tool sees
// only its argument vector and the assembled environment, never the invoking
// process's task state.
type InProcessRuntime struct {
	// Registry maps entry-point identifiers to registered invocables.
	Registry toolreg.Registry
}

// NewInProcessRuntime creates an in-process runtime backed by the given
// entry-point registry.
func NewInProcessRuntime(reg toolreg.Registry) *InProcessRuntime {
	return &InProcessRuntime{Registry: reg}
}

// Name returns the runtime name.
func (r *InProcessRuntime) Name() string {
	return string(RuntimeTypeInProcess)
}

// Available returns whether this runtime is available. The in-process
// runtime is built in and always usable.
func (r *InProcessRuntime) Available() bool {
	return true
}

// Validate resolves the entry point in the registry and checks its shape.
// No goroutine is spawned here.
func (r *InProcessRuntime) Validate(ctx *ExecutionContext) error {
	_, err := r.resolve(ctx.EntryPoint)
	return err
}

// resolve looks up the entry point and converts it to the required
// invocable shape.
func (r *InProcessRuntime) resolve(entryPoint string) (toolreg.Main, error) {
	if entryPoint == "" {
		return nil, &InvalidEntryPointError{EntryPoint: entryPoint, Reason: "entry point name is empty"}
	}
	if r.Registry == nil {
		return nil, &EntryPointNotFoundError{EntryPoint: entryPoint, Runtime: RuntimeTypeInProcess}
	}

	v, ok := r.Registry.Resolve(entryPoint)
	if !ok {
		return nil, &EntryPointNotFoundError{EntryPoint: entryPoint, Runtime: RuntimeTypeInProcess}
	}

	main, ok := toolreg.AsMain(v)
	if !ok {
		return nil, &InvalidEntryPointError{
			EntryPoint: entryPoint,
			Reason:     fmt.Sprintf("registered value %T does not have the main(args []string) error shape", v),
		}
	}
	return main, nil
}

// Execute runs the entry point on a dedicated goroutine and blocks until it
// finishes or the caller's context is cancelled. Cancellation abandons the
// wait only; the goroutine keeps running detached.
func (r *InProcessRuntime) Execute(ctx *ExecutionContext) *Result {
	main, err := r.resolve(ctx.EntryPoint)
	if err != nil {
		return NewErrorResult(CodeNotFound, err)
	}

	done := make(chan *Result, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- NewErrorResult(CodeFailure, &ToolExecutionError{
					EntryPoint: ctx.EntryPoint,
					Cause:      fmt.Errorf("panic: %v", rec),
				})
			}
		}()

		err := main(ctx.Args)
		if err == nil {
			done <- NewSuccessResult()
			return
		}

		var status *toolreg.ExitStatusError
		if errors.As(err, &status) {
			done <- NewExitCodeResult(ExitCode(status.Code))
			return
		}
		done <- NewErrorResult(CodeFailure, &ToolExecutionError{EntryPoint: ctx.EntryPoint, Cause: err})
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Context.Done():
		return NewErrorResult(CodeInterrupted, &RunInterruptedError{
			EntryPoint: ctx.EntryPoint,
			Cause:      ctx.Context.Err(),
		})
	}
}
