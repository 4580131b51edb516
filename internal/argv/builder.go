// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	// ConfFlag prefixes each generated configuration key=value token.
	ConfFlag = "-D"
	// LibJarsFlag prefixes the comma-joined lib path token.
	LibJarsFlag = "-libjars"
	// libJarsSeparator joins lib paths into the single -libjars token.
	libJarsSeparator = ","
)

// ErrInvalidConf is the sentinel error wrapped by InvalidConfError.
var ErrInvalidConf = errors.New("invalid configuration entry")

// InvalidConfError is returned when a configuration entry cannot be turned
// into a well-formed -D token. The surrounding build system is expected to
// hand over clean entries; the builder rejects rather than coerces.
type InvalidConfError struct {
	Key string
}

// Error implements the error interface.
func (e *InvalidConfError) Error() string {
	return fmt.Sprintf("invalid configuration entry: key %q must be non-empty", e.Key)
}

// Unwrap returns ErrInvalidConf so callers can use errors.Is for programmatic detection.
func (e *InvalidConfError) Unwrap() error { return ErrInvalidConf }

// Build assembles the ordered argument vector for a tool run:
//
//	-D key=value ...          one pair per configuration entry, keys sorted
//	-libjars p1,p2,...        when includeLibPaths is set, primary path first
//	extraArgs...              verbatim, in the order given
//
// Build is pure: identical inputs always produce identical vectors.
func Build(conf map[string]string, libPaths []string, includeLibPaths bool, extraArgs []string) ([]string, error) {
	args := make([]string, 0, 2*len(conf)+2+len(extraArgs))

	for _, key := range slices.Sorted(maps.Keys(conf)) {
		if strings.TrimSpace(key) == "" {
			return nil, &InvalidConfError{Key: key}
		}
		args = append(args, ConfFlag, key+"="+conf[key])
	}

	if includeLibPaths {
		args = append(args, LibJarsFlag, strings.Join(libPaths, libJarsSeparator))
	}

	args = append(args, extraArgs...)
	return args, nil
}
