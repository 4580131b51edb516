// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure class in the catalog.
type Id int

const (
	MissingArtifactId Id = iota + 1
	InvalidPathId
	EntryPointNotFoundId
	InvalidEntryPointId
	ToolExecutionFailedId
	RunInterruptedId
	RuntimeNotAvailableId
	ManifestParseErrorId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is the markdown help text rendered for an issue.
	MarkdownMsg string

	// HttpLink points at further reading for an issue.
	HttpLink string

	// Issue is one catalog entry: a known failure class with help text.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

// Id returns the catalog identifier of the issue.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown help text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// ExtLinks returns external links that might help the user.
func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's markdown help with glamour.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	missingArtifactIssue = &Issue{
		id: MissingArtifactId,
		mdMsg: `
# Main artifact missing

The build's own output artifact was not found on disk. The tool runner
refuses to assemble an environment without it.

## Things you can try
- Run the packaging step of your build before invoking the tool runner
- Check that the path passed via ` + "`--primary`" + ` (or the manifest) points at
  the packaged artifact, not the build directory`,
	}

	entryPointNotFoundIssue = &Issue{
		id: EntryPointNotFoundId,
		mdMsg: `
# Entry point not found

The target entry point could not be located inside the isolated execution
context.

## Things you can try
- For the subprocess runtime, make sure the program is on PATH
- For the in-process runtime, make sure the tool was registered under the
  exact name you passed via ` + "`--tool`" + `
- For the shell runtime, make sure the script file exists`,
	}

	invalidEntryPointIssue = &Issue{
		id: InvalidEntryPointId,
		mdMsg: `
# Entry point is not invocable

The target was located but does not expose the required invocable shape
(a single main-style function taking the argument vector).

## Things you can try
- Register the tool as a ` + "`func(args []string) error`" + `
- For the shell runtime, fix the script's syntax errors`,
	}

	toolExecutionFailedIssue = &Issue{
		id: ToolExecutionFailedId,
		mdMsg: `
# Tool terminated abnormally

The entry point itself failed while running. The original cause is attached
to the error; the invoking build process is unaffected.

## Things you can try
- Re-run with ` + "`--verbose`" + ` to see the full error chain
- Run the tool directly with the printed argument vector to reproduce`,
	}

	runInterruptedIssue = &Issue{
		id: RunInterruptedId,
		mdMsg: `
# Run interrupted while waiting

The wait for the tool was cancelled externally. The spawned work was NOT
terminated and may still be running detached; this runner makes no
cancellation guarantee for work it has already started.`,
	}

	runtimeNotAvailableIssue = &Issue{
		id: RuntimeNotAvailableId,
		mdMsg: `
# Runtime not available

The requested isolation runtime is not usable on this system.

## Things you can try
- Pick one of the runtimes listed by ` + "`kite run-tool --help`" + `
- Check your configuration's default_runtime setting`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Dependency manifest unreadable

The kite-deps.toml manifest handed over by dependency resolution could not
be parsed or failed validation.

## Expected shape
~~~toml
primary = "target/app.jar"
dependencies = ["deps/a.jar", "deps/b.jar"]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file exists but could not be parsed or did not match the schema.

## Things you can try
- Check the file for CUE syntax errors
- Compare your settings against the embedded schema (` + "`kite config show`" + `)`,
	}
)

// issues indexes the catalog by id.
var issues = map[Id]*Issue{
	MissingArtifactId:     missingArtifactIssue,
	EntryPointNotFoundId:  entryPointNotFoundIssue,
	InvalidEntryPointId:   invalidEntryPointIssue,
	ToolExecutionFailedId: toolExecutionFailedIssue,
	RunInterruptedId:      runInterruptedIssue,
	RuntimeNotAvailableId: runtimeNotAvailableIssue,
	ManifestParseErrorId:  manifestParseErrorIssue,
	ConfigLoadFailedId:    configLoadFailedIssue,
}

// Get returns the catalog entry for an id, or nil when the id has no help
// text (not every failure class carries a card).
func Get(id Id) *Issue {
	return issues[id]
}

// All returns every catalog entry.
func All() []*Issue {
	return maps.Values(issues)
}
