// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"errors"
	"fmt"
	"os/exec"
)

// SubprocessRuntime runs the entry point as a child process with an
// explicitly constructed environment. This is the strongest isolation the
// runner offers: the child shares nothing with the invoking process beyond
// the foundational environment it is seeded with.
type SubprocessRuntime struct{}

// NewSubprocessRuntime creates a subprocess runtime.
func NewSubprocessRuntime() *SubprocessRuntime {
	return &SubprocessRuntime{}
}

// Name returns the runtime name.
func (r *SubprocessRuntime) Name() string {
	return string(RuntimeTypeSubprocess)
}

// Available returns whether this runtime is available. Spawning processes
// needs no external tooling.
func (r *SubprocessRuntime) Available() bool {
	return true
}

// Validate resolves the entry point on the executable search path. No
// process is spawned here.
func (r *SubprocessRuntime) Validate(ctx *ExecutionContext) error {
	_, err := r.resolve(ctx.EntryPoint)
	return err
}

// resolve locates the entry-point executable.
func (r *SubprocessRuntime) resolve(entryPoint string) (string, error) {
	if entryPoint == "" {
		return "", &InvalidEntryPointError{EntryPoint: entryPoint, Reason: "entry point name is empty"}
	}

	path, err := exec.LookPath(entryPoint)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &EntryPointNotFoundError{EntryPoint: entryPoint, Runtime: RuntimeTypeSubprocess}
		}
		return "", &InvalidEntryPointError{EntryPoint: entryPoint, Reason: err.Error()}
	}
	return path, nil
}

// Execute spawns the child process and blocks until it exits or the
// caller's context is cancelled. Cancellation abandons the wait but never
// kills the child, so the command is built without CommandContext; the
// child may run to completion detached.
func (r *SubprocessRuntime) Execute(ctx *ExecutionContext) *Result {
	path, err := r.resolve(ctx.EntryPoint)
	if err != nil {
		return NewErrorResult(CodeNotFound, err)
	}

	cmd := exec.Command(path, ctx.Args...)
	cmd.Env = isolatedEnviron(ctx)
	cmd.Dir = ctx.WorkDir
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	if err := cmd.Start(); err != nil {
		return NewErrorResult(CodeFailure, &ToolExecutionError{
			EntryPoint: ctx.EntryPoint,
			Cause:      fmt.Errorf("starting process: %w", err),
		})
	}

	done := make(chan *Result, 1)
	go func() {
		err := cmd.Wait()
		if err == nil {
			done <- NewSuccessResult()
			return
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			done <- NewExitCodeResult(ExitCode(exitErr.ExitCode()))
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
