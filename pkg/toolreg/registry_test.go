// SPDX-License-Identifier: MPL-2.0

package toolreg

import (
	"errors"
	"testing"
)

func TestMapRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := MapRegistry{
		"com.example.Tool": Main(func(args []string) error { return nil }),
	}

	if _, ok := reg.Resolve("com.example.Tool"); !ok {
		t.Error("Resolve() = false for registered entry")
	}
	if _, ok := reg.Resolve("com.example.Missing"); ok {
		t.Error("Resolve() = true for unregistered entry")
	}
}

func TestAsMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "named type", value: Main(func(args []string) error { return nil }), want: true},
		{name: "underlying func type", value: func(args []string) error { return nil }, want: true},
		{name: "nil named type", value: Main(nil), want: false},
		{name: "wrong signature", value: func() {}, want: false},
		{name: "non-function", value: "com.example.Tool", want: false},
		{name: "nil value", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, ok := AsMain(tt.value)
			if ok != tt.want {
				t.Errorf("AsMain() ok = %v, want %v", ok, tt.want)
			}
			if ok && fn == nil {
				t.Error("AsMain() returned ok with nil Main")
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	Register("toolreg.test.echo", func(args []string) error { return nil })

	v, ok := Default().Resolve("toolreg.test.echo")
	if !ok {
		t.Fatal("Default().Resolve() = false for registered entry")
	}
	if _, ok := AsMain(v); !ok {
		t.Error("registered entry does not satisfy the Main shape")
	}

	found := false
	for _, name := range Names() {
		if name == "toolreg.test.echo" {
			found = true
		}
	}
	if !found {
		t.Error("Names() does not include registered entry")
	}
}

func TestExitStatusError(t *testing.T) {
	t.Parallel()

	err := Exit(3)
	var statusErr *ExitStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Exit(3) is not an *ExitStatusError: %v", err)
	}
	if statusErr.Code != 3 {
		t.Errorf("Code = %d, want 3", statusErr.Code)
	}
	if got := statusErr.Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
	if errors.Is(err, ErrInvalidExitStatus) {
		t.Error("in-range status unwraps to ErrInvalidExitStatus")
	}
	if !errors.Is(Exit(300), ErrInvalidExitStatus) {
		t.Error("out-of-range status does not unwrap to ErrInvalidExitStatus")
	}
}
