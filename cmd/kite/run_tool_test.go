// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"github.com/bubblesly/kite/internal/config"
	"github.com/bubblesly/kite/internal/issue"
	"github.com/bubblesly/kite/internal/tool"
)

func TestMergeConf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    map[string]string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "pairs only",
			pairs: []string{"fs.defaultFS=hdfs://nn:8020", "mapreduce.job.reduces=3"},
			want: map[string]string{
				"fs.defaultFS":          "hdfs://nn:8020",
				"mapreduce.job.reduces": "3",
			},
		},
		{
			name:  "cli wins on collision",
			base:  map[string]string{"k": "from-config", "keep": "v"},
			pairs: []string{"k=from-cli"},
			want:  map[string]string{"k": "from-cli", "keep": "v"},
		},
		{
			name:  "value may contain equals",
			pairs: []string{"jvm.opts=-Xmx1g -Dfoo=bar"},
			want:  map[string]string{"jvm.opts": "-Xmx1g -Dfoo=bar"},
		},
		{
			name:    "missing equals",
			pairs:   []string{"novalue"},
			wantErr: true,
		},
		{
			name:    "empty key",
			pairs:   []string{"=v"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := mergeConf(tt.base, tt.pairs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("mergeConf() accepted invalid pair")
				}
				return
			}
			if err != nil {
				t.Fatalf("mergeConf() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("mergeConf() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("conf[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestResolveRuntime(t *testing.T) {
	// Not parallel: subtests mutate the package-level runtimeOverride var.

	t.Run("config default", func(t *testing.T) {
		origOverride := runtimeOverride
		t.Cleanup(func() { runtimeOverride = origOverride })
		runtimeOverride = ""

		cfg := config.DefaultConfig()
		mode, err := resolveRuntime(cfg)
		if err != nil {
			t.Fatalf("resolveRuntime() error: %v", err)
		}
		if mode != tool.RuntimeTypeSubprocess {
			t.Errorf("mode = %q, want %q", mode, tool.RuntimeTypeSubprocess)
		}
	})

	t.Run("flag overrides config", func(t *testing.T) {
		origOverride := runtimeOverride
		t.Cleanup(func() { runtimeOverride = origOverride })
		runtimeOverride = "shell"

		cfg := config.DefaultConfig()
		mode, err := resolveRuntime(cfg)
		if err != nil {
			t.Fatalf("resolveRuntime() error: %v", err)
		}
		if mode != tool.RuntimeTypeShell {
			t.Errorf("mode = %q, want %q", mode, tool.RuntimeTypeShell)
		}
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		origOverride := runtimeOverride
		t.Cleanup(func() { runtimeOverride = origOverride })
		runtimeOverride = "container"

		if _, err := resolveRuntime(config.DefaultConfig()); !errors.Is(err, config.ErrInvalidRuntimeMode) {
			t.Errorf("error does not wrap ErrInvalidRuntimeMode: %v", err)
		}
	})
}

func TestIssueForResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "entry point not found",
			err:  &tool.EntryPointNotFoundError{EntryPoint: "missing", Runtime: "subprocess"},
			want: issue.EntryPointNotFoundId,
		},
		{
			name: "invalid entry point",
			err:  &tool.InvalidEntryPointError{EntryPoint: "bad", Reason: "unparsable"},
			want: issue.InvalidEntryPointId,
		},
		{
			name: "interrupted",
			err:  &tool.RunInterruptedError{EntryPoint: "slow", Cause: errors.New("context canceled")},
			want: issue.RunInterruptedId,
		},
		{
			name: "execution failure",
			err:  &tool.ToolExecutionError{EntryPoint: "boom", Cause: errors.New("broke")},
			want: issue.ToolExecutionFailedId,
		},
		{
			name: "unclassified",
			err:  errors.New("mystery"),
			want: issue.ToolExecutionFailedId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := issueForResult(tt.err); got != tt.want {
				t.Errorf("issueForResult() = %v, want %v", got, tt.want)
			}
		})
	}
}
