// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrMissingArtifact is the sentinel error wrapped by MissingArtifactError.
	ErrMissingArtifact = errors.New("missing artifact")
	// ErrInvalidPath is the sentinel error wrapped by InvalidPathError.
	ErrInvalidPath = errors.New("invalid artifact path")
)

type (
	// Environment is the assembled, immutable input to an isolated tool run.
	// EnvPaths seed the isolated execution context; LibPaths feed the
	// -libjars style argument flag. Both start with the primary artifact,
	// followed by the dependencies in resolution order.
	Environment struct {
		// EnvPaths are absolute filesystem locations for context construction.
		EnvPaths []string
		// LibPaths are the raw artifact paths as supplied by the resolver.
		LibPaths []string
	}

	// MissingArtifactError is returned when the primary artifact file does
	// not exist. This is a fatal precondition of every run; it is never
	// retried at this layer.
	MissingArtifactError struct {
		Path string
	}

	// InvalidPathError is returned when an artifact path cannot be resolved
	// into an absolute environment location.
	InvalidPathError struct {
		Path   string
		Reason string
	}
)

// Error implements the error interface.
func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("main artifact missing: %s", e.Path)
}

// Unwrap returns ErrMissingArtifact so callers can use errors.Is for programmatic detection.
func (e *MissingArtifactError) Unwrap() error { return ErrMissingArtifact }

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("cannot convert %q to an environment location: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidPath so callers can use errors.Is for programmatic detection.
func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

// Assemble builds the isolated environment lists from the primary artifact
// and its resolved runtime dependencies. The primary artifact must exist on
// disk; dependency paths are taken on trust from the resolver but must still
// resolve to well-formed absolute locations.
func Assemble(primary string, deps []string) (*Environment, error) {
	info, err := os.Stat(primary)
	if err != nil || info.IsDir() {
		return nil, &MissingArtifactError{Path: primary}
	}

	env := &Environment{
		EnvPaths: make([]string, 0, len(deps)+1),
		LibPaths: make([]string, 0, len(deps)+1),
	}

	loc, err := toLocation(primary)
	if err != nil {
		return nil, err
	}
	env.EnvPaths = append(env.EnvPaths, loc)
	env.LibPaths = append(env.LibPaths, primary)

	for _, dep := range deps {
		loc, err := toLocation(dep)
		if err != nil {
			return nil, err
		}
		env.EnvPaths = append(env.EnvPaths, loc)
		env.LibPaths = append(env.LibPaths, dep)
	}

	return env, nil
}

// toLocation resolves a raw artifact path into an absolute location suitable
// for seeding the isolated execution context.
func toLocation(path string) (string, error) {
	if path == "" {
		return "", &InvalidPathError{Path: path, Reason: "path is empty"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &InvalidPathError{Path: path, Reason: err.Error()}
	}
	return abs, nil
}
