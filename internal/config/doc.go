// SPDX-License-Identifier: MPL-2.0

// Package config loads kite's configuration: the default isolation runtime,
// the distributed-cache flag default, and baseline configuration entries
// merged into every generated argument vector.
//
// Configuration lives in an optional config.cue file validated against an
// embedded CUE schema and merged into Viper; when no file exists, defaults
// apply. All loading goes through the Provider interface with explicit
// LoadOptions so tests can point it at fixture directories.
package config
