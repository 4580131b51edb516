// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bubblesly/kite/internal/argv"
	"github.com/bubblesly/kite/internal/artifact"
	"github.com/bubblesly/kite/internal/config"
	"github.com/bubblesly/kite/internal/issue"
	"github.com/bubblesly/kite/internal/tool"
)

var (
	// toolName is the entry point to run
	toolName string
	// runtimeOverride allows overriding the configured runtime
	runtimeOverride string
	// primaryPath is the primary artifact path
	primaryPath string
	// depPaths are dependency artifact paths
	depPaths []string
	// manifestPath points to a kite-deps.toml manifest
	manifestPath string
	// confPairs are key=value configuration entries
	confPairs []string
	// noDistributedCache disables dependency forwarding on the argument vector
	noDistributedCache bool
	// dryRun prints the resolved invocation without executing
	dryRun bool
)

// runToolCmd runs a tool entry point against an isolated artifact environment.
var runToolCmd = &cobra.Command{
	Use:   "run-tool [-- tool-args...]",
	Short: "Run a tool in an isolated artifact environment",
	Long: `Run a tool entry point against a freshly assembled artifact environment.

The environment is built from a primary artifact (--primary) plus dependency
artifacts (--dep, or a kite-deps.toml manifest via --manifest). The primary
artifact always comes first so its contents win over dependencies.

Configuration entries (--conf key=value) are passed to the tool as '-D key=value'
pairs, sorted by key. Unless dependency forwarding is disabled, dependency
paths are additionally passed as a '-libjars' argument.

Arguments after '--' are appended verbatim to the tool's argument vector.`,
	Example: `  kite run-tool --tool csv-import --primary target/app.jar -- input output
  kite run-tool --tool etl --manifest kite-deps.toml --conf fs.defaultFS=hdfs://nn:8020
  kite run-tool --tool lint.sh --runtime shell --primary build/out --no-distributed-cache`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args)
	},
}

func init() {
	runToolCmd.Flags().StringVarP(&toolName, "tool", "t", "", "entry point to run (required)")
	runToolCmd.Flags().StringVarP(&runtimeOverride, "runtime", "r", "", "override the runtime (subprocess, inprocess, shell)")
	runToolCmd.Flags().StringVarP(&primaryPath, "primary", "p", "", "primary artifact path")
	runToolCmd.Flags().StringArrayVarP(&depPaths, "dep", "d", nil, "dependency artifact path (repeatable)")
	runToolCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "dependency manifest file (kite-deps.toml)")
	runToolCmd.Flags().StringArrayVarP(&confPairs, "conf", "c", nil, "configuration entry as key=value (repeatable)")
	runToolCmd.Flags().BoolVar(&noDistributedCache, "no-distributed-cache", false, "do not forward dependency paths on the argument vector")
	runToolCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved invocation without executing")

	_ = runToolCmd.MarkFlagRequired("tool")
}

func runTool(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	primary, deps, err := resolveArtifacts()
	if err != nil {
		return err
	}

	env, err := artifact.Assemble(primary, deps)
	if err != nil {
		if errors.Is(err, artifact.ErrMissingArtifact) {
			renderIssue(issue.MissingArtifactId)
		}
		return err
	}

	conf, err := mergeConf(cfg.Conf, confPairs)
	if err != nil {
		return err
	}

	includeLibPaths := cfg.DistributedCache && !noDistributedCache
	toolArgs, err := argv.Build(conf, env.LibPaths, includeLibPaths, args)
	if err != nil {
		return err
	}

	mode, err := resolveRuntime(cfg)
	if err != nil {
		return err
	}

	if dryRun {
		renderDryRun(cmd.OutOrStdout(), toolName, mode, toolArgs, env)
		return nil
	}

	ec := tool.NewExecutionContext(toolName, toolArgs, env)
	ec.Context = cmd.Context()
	for k, v := range cfg.ExtraEnv {
		ec.ExtraEnv[k] = v
	}
	ec.Stdout = cmd.OutOrStdout()
	ec.Stderr = cmd.ErrOrStderr()
	ec.Stdin = cmd.InOrStdin()

	runner := tool.NewRunner(tool.BuildRegistry(tool.BuildRegistryOptions{}), slog.Default())
	result := runner.Run(mode, ec)

	if result.Error != nil {
		renderIssue(issueForResult(result.Error))
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	}
	if !result.Success() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// resolveArtifacts merges the --primary/--dep flags with the optional
// manifest. Flags win over the manifest for the primary path; dependency
// lists are concatenated with manifest entries first.
func resolveArtifacts() (string, []string, error) {
	primary := primaryPath
	deps := depPaths

	if manifestPath != "" {
		m, err := artifact.LoadManifest(manifestPath)
		if err != nil {
			renderIssue(issue.ManifestParseErrorId)
			return "", nil, err
		}
		if primary == "" {
			primary = m.Primary
		}
		deps = append(m.Dependencies, depPaths...)
	}

	if primary == "" {
		return "", nil, errors.New("no primary artifact: pass --primary or a manifest with a 'primary' entry")
	}
	return primary, deps, nil
}

// mergeConf overlays CLI key=value pairs onto the configured conf map.
// CLI entries win on key collision.
func mergeConf(base map[string]string, pairs []string) (map[string]string, error) {
	conf := make(map[string]string, len(base)+len(pairs))
	for k, v := range base {
		conf[k] = v
	}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --conf entry '%s': expected key=value", pair)
		}
		conf[k] = v
	}
	return conf, nil
}

// resolveRuntime picks the runtime from the --runtime flag or the configured
// default, validating the mode either way.
func resolveRuntime(cfg *config.Config) (tool.RuntimeType, error) {
	mode := cfg.DefaultRuntime
	if runtimeOverride != "" {
		mode = config.RuntimeMode(runtimeOverride)
	}
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return tool.RuntimeType(mode), nil
}

// issueForResult maps an execution error to its issue catalog entry.
func issueForResult(err error) issue.Id {
	switch {
	case errors.Is(err, tool.ErrEntryPointNotFound):
		return issue.EntryPointNotFoundId
	case errors.Is(err, tool.ErrInvalidEntryPoint):
		return issue.InvalidEntryPointId
	case errors.Is(err, tool.ErrRunInterrupted):
		return issue.RunInterruptedId
	default:
		return issue.ToolExecutionFailedId
	}
}

// renderIssue prints the catalog card for an issue to stderr. Ids without
// a card and rendering failures are ignored; the caller still returns the
// underlying error.
func renderIssue(id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
