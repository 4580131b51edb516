// SPDX-License-Identifier: MPL-2.0

// Package tool runs a target entry point inside an isolated execution
// context assembled from resolved dependency artifacts.
//
// Three runtime implementations are available:
//   - subprocess: runs the entry point as a child process with an explicitly
//     constructed environment (strongest isolation)
//   - inprocess: resolves the entry point through a toolreg.Registry and runs
//     it on a dedicated goroutine
//   - shell: interprets a shell-script entry point with the embedded
//     mvdan/sh interpreter
//
// All runtimes implement the Runtime interface with Name(), Available(),
// Validate(), and Execute(). Validate performs entry-point resolution; no
// unit of concurrency is spawned when resolution fails.
//
// Runner drives the per-invocation state machine
// (idle → environment_built → entry_point_resolved → running →
// completed|failed|interrupted_while_waiting) and relays the outcome. The
// caller blocks only at the join point; cancelling the caller's context
// abandons the wait but does not terminate the spawned work, which may
// continue detached.
package tool
