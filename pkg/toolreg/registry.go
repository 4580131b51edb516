// SPDX-License-Identifier: MPL-2.0

package toolreg

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrInvalidExitStatus is the sentinel error wrapped by ExitStatusError.
var ErrInvalidExitStatus = errors.New("invalid exit status")

type (
	// Main is the required invocable shape for an in-process tool entry
	// point. It receives the fully assembled argument vector and returns
	// nil on success. A non-nil *ExitStatusError reports a non-zero exit
	// status without marking the run as abnormal; any other error is
	// treated as abnormal termination.
	Main func(args []string) error

	// ExitStatusError carries a tool's non-zero exit status back to the
	// runner. It represents normal process-style termination, not an
	// infrastructure failure.
	ExitStatusError struct {
		Code int
	}

	// Registry resolves entry-point identifiers to registered values.
	// Resolved values are shape-checked by the caller via AsMain; a
	// registry is free to store arbitrary values.
	Registry interface {
		// Resolve returns the value registered under name, if any.
		Resolve(name string) (any, bool)
	}

	// MapRegistry is a plain map-backed Registry. It is not safe for
	// concurrent mutation; populate it before handing it to a runner.
	MapRegistry map[string]any
)

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

// Unwrap returns ErrInvalidExitStatus only for out-of-range codes so that
// errors.Is(err, ErrInvalidExitStatus) flags malformed statuses; valid
// non-zero statuses unwrap to nothing.
func (e *ExitStatusError) Unwrap() error {
	if e.Code < 0 || e.Code > 255 {
		return ErrInvalidExitStatus
	}
	return nil
}

// Exit returns an error carrying the given exit status. Tools use this to
// terminate with a specific status code:
//
//	func run(args []string) error {
//		if len(args) == 0 {
//			return toolreg.Exit(2)
//		}
//		return nil
//	}
func Exit(code int) error {
	return &ExitStatusError{Code: code}
}

// Resolve implements Registry.
func (m MapRegistry) Resolve(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// AsMain reports whether a resolved registry value has the required
// invocable shape, converting it when it does. Both the Main named type and
// its underlying function type are accepted.
func AsMain(v any) (Main, bool) {
	switch fn := v.(type) {
	case Main:
		return fn, fn != nil
	case func(args []string) error:
		return fn, fn != nil
	default:
		return nil, false
	}
}

var (
	defaultMu  sync.RWMutex
	defaultReg = MapRegistry{}
)

// Register adds an entry point to the default registry, replacing any
// previous registration under the same name. Typically called from init
// functions of packages that provide tools.
func Register(name string, entry any) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultReg[name] = entry
}

// Default returns the process-wide default registry.
func Default() Registry {
	return defaultRegistry{}
}

// defaultRegistry adapts the mutex-guarded default map to the Registry
// interface without exposing the map itself.
type defaultRegistry struct{}

// Resolve implements Registry for the default registry.
func (defaultRegistry) Resolve(name string) (any, bool) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	v, ok := defaultReg[name]
	return v, ok
}

// Names returns the identifiers registered in the default registry, for
// diagnostics output.
func Names() []string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	names := make([]string, 0, len(defaultReg))
	for name := range defaultReg {
		names = append(names, name)
	}
	return names
}

// String returns a short description of a MapRegistry for debug output.
func (m MapRegistry) String() string {
	return fmt.Sprintf("toolreg.MapRegistry(%d entries)", len(m))
}
