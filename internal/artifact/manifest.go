// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the conventional name of the dependency manifest
// written by the external dependency-resolution step.
const ManifestFileName = "kite-deps.toml"

// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
var ErrInvalidManifest = errors.New("invalid dependency manifest")

type (
	// Manifest is the hand-off document from dependency resolution: the
	// build's own output artifact plus its runtime dependencies, in
	// resolution order.
	Manifest struct {
		// Primary is the path to the build's own output artifact.
		Primary string `toml:"primary"`
		// Dependencies are the resolved runtime dependency paths.
		Dependencies []string `toml:"dependencies"`
	}

	// InvalidManifestError is returned when a manifest file cannot be
	// parsed or fails validation.
	InvalidManifestError struct {
		Path   string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid dependency manifest %s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidManifest so callers can use errors.Is for programmatic detection.
func (e *InvalidManifestError) Unwrap() error { return ErrInvalidManifest }

// LoadManifest reads and validates a dependency manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: err.Error()}
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: err.Error()}
	}

	if err := m.Validate(); err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: err.Error()}
	}
	return &m, nil
}

// Validate checks manifest invariants: a primary artifact is required and no
// dependency entry may be blank.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Primary) == "" {
		return errors.New("primary artifact path is required")
	}
	for i, dep := range m.Dependencies {
		if strings.TrimSpace(dep) == "" {
			return fmt.Errorf("dependency entry %d is blank", i)
		}
	}
	return nil
}
