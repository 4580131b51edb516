// SPDX-License-Identifier: MPL-2.0

package tool

// Result carries the outcome of a tool invocation back to the caller.
type Result struct {
	// ExitCode is the exit code of the tool.
	ExitCode ExitCode
	// Error is the infrastructure or execution error, if any.
	Error error
	// State is the terminal lifecycle state the invocation reached.
	State State
}

// Success returns true if the tool completed with exit code 0 and no error.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal tool termination rather
// than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}
