// SPDX-License-Identifier: MPL-2.0

// Package argv builds the argument vector for a tool invocation, merging
// generated configuration flags, the distributed-cache lib path flag, and
// user-supplied arguments into a single deterministic ordered vector.
package argv
