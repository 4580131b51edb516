// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellRuntime interprets a shell-script entry point with the embedded
// mvdan/sh interpreter. The script sees only the constructed environment,
// not the invoking process's task state.
type ShellRuntime struct{}

// NewShellRuntime creates a shell runtime.
func NewShellRuntime() *ShellRuntime {
	return &ShellRuntime{}
}

// Name returns the runtime name.
func (r *ShellRuntime) Name() string {
	return string(RuntimeTypeShell)
}

// Available returns whether this runtime is available. The interpreter is
// compiled in, so it always is.
func (r *ShellRuntime) Available() bool {
	return true
}

// Validate locates the script file and parses it. A script that does not
// parse has no invocable shape; either way no interpreter is started here.
func (r *ShellRuntime) Validate(ctx *ExecutionContext) error {
	_, err := r.resolve(ctx.EntryPoint)
	return err
}

// resolve reads and parses the shell-script entry point.
func (r *ShellRuntime) resolve(entryPoint string) (*syntax.File, error) {
	if entryPoint == "" {
		return nil, &InvalidEntryPointError{EntryPoint: entryPoint, Reason: "entry point name is empty"}
	}

	data, err := os.ReadFile(entryPoint)
	if err != nil {
		return nil, &EntryPointNotFoundError{EntryPoint: entryPoint, Runtime: RuntimeTypeShell}
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(string(data)), entryPoint)
	if err != nil {
		return nil, &InvalidEntryPointError{EntryPoint: entryPoint, Reason: fmt.Sprintf("script syntax error: %v", err)}
	}
	return prog, nil
}

// Execute interprets the script on a dedicated goroutine and blocks until
// it finishes or the caller's context is cancelled. The interpreter runs on
// a background context so that abandoning the wait does not stop the script.
func (r *ShellRuntime) Execute(ctx *ExecutionContext) *Result {
	prog, err := r.resolve(ctx.EntryPoint)
	if err != nil {
		return NewErrorResult(CodeNotFound, err)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(isolatedEnviron(ctx)...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
	}
	if ctx.WorkDir != "" {
		opts = append(opts, interp.Dir(ctx.WorkDir))
	}
	// Prepend "--" so args like "-v" are not taken for shell options.
	if len(ctx.Args) > 0 {
		params := append([]string{"--"}, ctx.Args...)
		opts = append(opts, interp.Params(params...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(CodeFailure, &ToolExecutionError{
			EntryPoint: ctx.EntryPoint,
			Cause:      fmt.Errorf("creating interpreter: %w", err),
		})
	}

	done := make(chan *Result, 1)
	go func() {
		err := runner.Run(context.Background(), prog)
		if err == nil {
			done <- NewSuccessResult()
			return
		}

		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			done <- NewExitCodeResult(ExitCode(exitStatus))
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
