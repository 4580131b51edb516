// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/bubblesly/kite/internal/artifact"
	"github.com/bubblesly/kite/internal/tool"
)

// renderDryRun prints the resolved invocation without executing. It shows
// the tool name, runtime, full argument vector, and the assembled environment
// paths, so a user can see exactly what kite would launch.
func renderDryRun(w io.Writer, name string, mode tool.RuntimeType, args []string, env *artifact.Environment) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	// Invocation metadata.
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Tool:"), name)
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Runtime:"), string(mode))

	// Argument vector, one entry per line.
	fmt.Fprintln(w)
	fmt.Fprintln(w, VerboseHighlightStyle.Render("  Arguments:"))
	if len(args) == 0 {
		fmt.Fprintln(w, VerboseStyle.Render("    (none)"))
	}
	for _, a := range args {
		fmt.Fprintf(w, "    %s\n", a)
	}

	// Environment paths, primary artifact first.
	fmt.Fprintln(w)
	fmt.Fprintln(w, VerboseHighlightStyle.Render("  Environment paths:"))
	for _, p := range env.EnvPaths {
		fmt.Fprintf(w, "    %s\n", p)
	}

	fmt.Fprintln(w)
}
