// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("assemble tool environment").
		WithResource("target/app.jar").
		Wrap(cause).
		BuildError()

	want := "failed to assemble tool environment: target/app.jar: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	outer := NewErrorContext().
		WithOperation("run tool").
		WithSuggestion("Re-run with --verbose").
		WithSuggestion("Check the tool's own logs").
		Wrap(inner).
		Build()

	concise := outer.Format(false)
	if !strings.Contains(concise, "• Re-run with --verbose") || !strings.Contains(concise, "• Check the tool's own logs") {
		t.Errorf("Format(false) missing suggestions: %q", concise)
	}
	if strings.Contains(concise, "Error chain:") {
		t.Errorf("Format(false) includes the error chain: %q", concise)
	}

	verbose := outer.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. inner") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil) != nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "run tool")
	if !errors.Is(err, cause) {
		t.Error("cause not preserved")
	}
}
