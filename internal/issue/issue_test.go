// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	t.Parallel()

	known := []Id{
		MissingArtifactId, EntryPointNotFoundId, InvalidEntryPointId,
		ToolExecutionFailedId, RunInterruptedId, RuntimeNotAvailableId,
		ManifestParseErrorId, ConfigLoadFailedId,
	}
	for _, id := range known {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty help text", id)
		}
	}
}

func TestGetUnknownIdReturnsNil(t *testing.T) {
	t.Parallel()

	if Get(Id(9999)) != nil {
		t.Error("Get(unknown) != nil")
	}
}

func TestRenderUsesCatalogText(t *testing.T) {
	// Stub the glamour renderer; the test checks plumbing, not styling.
	orig := render
	render = func(in, _ string) (string, error) { return in, nil }
	t.Cleanup(func() { render = orig })

	out, err := Get(MissingArtifactId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "Main artifact missing") {
		t.Errorf("Render() output missing catalog text: %q", out)
	}
}

func TestAllCoversCatalog(t *testing.T) {
	t.Parallel()

	if got := len(All()); got != len(issues) {
		t.Errorf("All() returned %d issues, want %d", got, len(issues))
	}
}
