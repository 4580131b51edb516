// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context: the ActionableError
// wrapper with operation/resource/suggestion metadata, and a catalog of
// known failure classes with markdown help rendered via glamour.
package issue
