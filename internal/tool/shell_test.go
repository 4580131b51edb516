// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeShellScript writes a script (no exec bit needed, the interpreter is
// embedded) and returns its path.
func writeShellScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.sh")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestShellValidate(t *testing.T) {
	t.Parallel()

	rt := NewShellRuntime()

	good := writeShellScript(t, `echo ok`)
	if err := rt.Validate(NewExecutionContext(good, nil, testEnvironment())); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.sh")
	if err := rt.Validate(NewExecutionContext(missing, nil, testEnvironment())); !errors.Is(err, ErrEntryPointNotFound) {
		t.Errorf("missing script: error does not wrap ErrEntryPointNotFound: %v", err)
	}

	broken := writeShellScript(t, `if then fi (`)
	if err := rt.Validate(NewExecutionContext(broken, nil, testEnvironment())); !errors.Is(err, ErrInvalidEntryPoint) {
		t.Errorf("unparsable script: error does not wrap ErrInvalidEntryPoint: %v", err)
	}
}

func TestShellExecute(t *testing.T) {
	t.Parallel()

	script := writeShellScript(t, `echo "argv:$@"`+"\n"+`echo "toolpath:$KITE_TOOL_PATH"`)

	var stdout bytes.Buffer
	ec := NewExecutionContext(script, []string{"-v", "input"}, testEnvironment())
	ec.Stdout = &stdout

	res := NewShellRuntime().Execute(ec)
	if !res.Success() {
		t.Fatalf("Execute() = %+v, want success", res)
	}
	out := stdout.String()
	if !strings.Contains(out, "argv:-v input") {
		t.Errorf("args not forwarded (flag-like args must survive): %q", out)
	}
	if !strings.Contains(out, "toolpath:/abs/app.jar") {
		t.Errorf("%s not visible to script: %q", ToolPathEnvVar, out)
	}
}

func TestShellExecuteExitCode(t *testing.T) {
	t.Parallel()

	res := NewShellRuntime().Execute(NewExecutionContext(writeShellScript(t, "exit 9"), nil, testEnvironment()))
	if res.Error != nil {
		t.Fatalf("non-zero exit treated as infrastructure failure: %v", res.Error)
	}
	if res.ExitCode != 9 {
		t.Errorf("ExitCode = %d, want 9", res.ExitCode)
	}
}
