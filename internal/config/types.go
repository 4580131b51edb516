// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RuntimeSubprocess runs tools as child processes (default).
	RuntimeSubprocess RuntimeMode = "subprocess"
	// RuntimeInProcess runs registered tools on a dedicated goroutine.
	RuntimeInProcess RuntimeMode = "inprocess"
	// RuntimeShell runs shell-script tools in the embedded interpreter.
	RuntimeShell RuntimeMode = "shell"
)

var (
	// ErrInvalidRuntimeMode is the sentinel error wrapped by InvalidRuntimeModeError.
	ErrInvalidRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidConfKey is the sentinel error wrapped by InvalidConfKeyError.
	ErrInvalidConfKey = errors.New("invalid configuration key")
)

type (
	// RuntimeMode specifies the isolation runtime for tool execution.
	// Defined locally to avoid coupling config to internal/tool; the CLI
	// layer casts to tool.RuntimeType at the boundary.
	RuntimeMode string

	// InvalidRuntimeModeError is returned when a RuntimeMode value is not
	// one of the defined modes.
	InvalidRuntimeModeError struct {
		Value RuntimeMode
	}

	// InvalidConfKeyError is returned when a baseline conf entry has a
	// blank key.
	InvalidConfKeyError struct {
		Key string
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose enables verbose diagnostic output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root configuration for kite.
	Config struct {
		// DefaultRuntime selects the isolation runtime when --runtime is
		// not passed.
		DefaultRuntime RuntimeMode `mapstructure:"default_runtime"`
		// DistributedCache controls the default for forwarding dependency
		// paths on the argument vector via -libjars.
		DistributedCache bool `mapstructure:"distributed_cache"`
		// Conf holds baseline configuration entries merged under the
		// CLI-supplied ones into every generated argument vector.
		Conf map[string]string `mapstructure:"conf"`
		// ExtraEnv holds environment variables added to every isolated
		// execution context.
		ExtraEnv map[string]string `mapstructure:"extra_env"`
		// UI holds terminal output preferences.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: %s, %s, %s)",
		e.Value, RuntimeSubprocess, RuntimeInProcess, RuntimeShell)
}

// Unwrap returns ErrInvalidRuntimeMode so callers can use errors.Is for programmatic detection.
func (e *InvalidRuntimeModeError) Unwrap() error { return ErrInvalidRuntimeMode }

// Error implements the error interface.
func (e *InvalidConfKeyError) Error() string {
	return fmt.Sprintf("invalid configuration key %q: must be non-empty", e.Key)
}

// Unwrap returns ErrInvalidConfKey so callers can use errors.Is for programmatic detection.
func (e *InvalidConfKeyError) Unwrap() error { return ErrInvalidConfKey }

// String returns the string representation of the RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// Validate returns nil if the RuntimeMode is one of the defined modes.
func (m RuntimeMode) Validate() error {
	switch m {
	case RuntimeSubprocess, RuntimeInProcess, RuntimeShell:
		return nil
	default:
		return &InvalidRuntimeModeError{Value: m}
	}
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultRuntime:   RuntimeSubprocess,
		DistributedCache: true,
		Conf:             map[string]string{},
		ExtraEnv:         map[string]string{},
	}
}

// Validate checks constraints the CUE schema cannot express on decoded
// values, such as blank conf keys produced by quoted empty strings.
func (c *Config) Validate() error {
	if err := c.DefaultRuntime.Validate(); err != nil {
		return err
	}
	for key := range c.Conf {
		if strings.TrimSpace(key) == "" {
			return &InvalidConfKeyError{Key: key}
		}
	}
	for key := range c.ExtraEnv {
		if strings.TrimSpace(key) == "" {
			return &InvalidConfKeyError{Key: key}
		}
	}
	return nil
}
