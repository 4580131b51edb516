// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/bubblesly/kite/internal/artifact"
	"github.com/bubblesly/kite/pkg/toolreg"
)

// Runtime type constants for the available isolation strategies.
const (
	RuntimeTypeSubprocess RuntimeType = "subprocess"
	RuntimeTypeInProcess  RuntimeType = "inprocess"
	RuntimeTypeShell      RuntimeType = "shell"
)

type (
	// RuntimeType identifies an isolation strategy.
	RuntimeType string

	// ExecutionContext contains everything a single tool invocation needs.
	// It is constructed once per run, never mutated after construction, and
	// owned exclusively by that run.
	ExecutionContext struct {
		// EntryPoint is the externally supplied name of the invocable target.
		EntryPoint string
		// Args is the fully assembled argument vector.
		Args []string
		// Environment is the assembled isolated environment.
		Environment *artifact.Environment
		// Context is the Go context for the caller's wait. Cancelling it
		// abandons the wait; it does not terminate the spawned work.
		Context context.Context
		// Stdout is where the tool writes standard output.
		Stdout io.Writer
		// Stderr is where the tool writes standard error.
		Stderr io.Writer
		// Stdin is where the tool reads standard input.
		Stdin io.Reader
		// WorkDir overrides the working directory for the tool.
		WorkDir string
		// ExtraEnv contains additional environment variables for the
		// isolated context.
		ExtraEnv map[string]string
		// ExecutionID uniquely identifies this invocation in logs.
		ExecutionID string
	}

	// Runtime is one isolation strategy for running a tool.
	Runtime interface {
		// Name returns the runtime name.
		Name() string
		// Available returns whether this runtime can be used on this system.
		Available() bool
		// Validate resolves the entry point inside the isolated context. It
		// returns EntryPointNotFoundError or InvalidEntryPointError without
		// spawning any unit of concurrency.
		Validate(ctx *ExecutionContext) error
		// Execute runs the resolved entry point on a dedicated unit of
		// concurrency and blocks until it completes or the caller's context
		// is cancelled.
		Execute(ctx *ExecutionContext) *Result
	}

	// Registry holds the available runtimes keyed by type.
	Registry struct {
		runtimes map[RuntimeType]Runtime
	}
)

// NewExecutionContext creates an execution context with defaults: process
// stdio, background context, and a fresh execution ID.
func NewExecutionContext(entryPoint string, args []string, env *artifact.Environment) *ExecutionContext {
	return &ExecutionContext{
		EntryPoint:  entryPoint,
		Args:        args,
		Environment: env,
		Context:     context.Background(),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		ExtraEnv:    make(map[string]string),
		ExecutionID: uuid.NewString(),
	}
}

// NewRegistry creates an empty runtime registry.
func NewRegistry() *Registry {
	return &Registry{runtimes: make(map[RuntimeType]Runtime)}
}

// Register adds a runtime to the registry.
func (r *Registry) Register(typ RuntimeType, rt Runtime) {
	r.runtimes[typ] = rt
}

// Get returns a runtime by type.
func (r *Registry) Get(typ RuntimeType) (Runtime, error) {
	rt, ok := r.runtimes[typ]
	if !ok {
		return nil, fmt.Errorf("runtime '%s' not registered", typ)
	}
	return rt, nil
}

// Available returns the types of all runtimes usable on this system.
func (r *Registry) Available() []RuntimeType {
	var types []RuntimeType
	for typ, rt := range r.runtimes {
		if rt.Available() {
			types = append(types, typ)
		}
	}
	return types
}

// BuildRegistryOptions configures runtime registry construction.
type BuildRegistryOptions struct {
	// EntryPoints is the registry consulted by the in-process runtime.
	// When nil, the process-wide default registry is used.
	EntryPoints toolreg.Registry
}

// BuildRegistry creates and populates the runtime registry with all three
// isolation strategies.
func BuildRegistry(opts BuildRegistryOptions) *Registry {
	entryPoints := opts.EntryPoints
	if entryPoints == nil {
		entryPoints = toolreg.Default()
	}

	reg := NewRegistry()
	reg.Register(RuntimeTypeSubprocess, NewSubprocessRuntime())
	reg.Register(RuntimeTypeShell, NewShellRuntime())
	reg.Register(RuntimeTypeInProcess, NewInProcessRuntime(entryPoints))
	return reg
}
