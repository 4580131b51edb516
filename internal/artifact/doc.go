// SPDX-License-Identifier: MPL-2.0

// Package artifact assembles the isolated execution environment for a tool
// invocation from resolved dependency artifacts.
//
// Assemble produces two parallel path lists from the primary artifact and
// its dependencies: EnvPaths (absolute locations used to seed the isolated
// execution context) and LibPaths (raw paths used only for distributed-cache
// style argument flags). The primary artifact always comes first in both.
//
// The dependency manifest (kite-deps.toml) is the hand-off format from the
// external dependency-resolution step; LoadManifest parses and validates it.
package artifact
