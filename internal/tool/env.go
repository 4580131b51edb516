// SPDX-License-Identifier: MPL-2.0

package tool

import (
	"os"
	"sort"
	"strings"
)

// ToolPathEnvVar carries the isolated environment path list into the tool's
// process, joined with the platform list separator. It is the subprocess
// analogue of a private classpath.
const ToolPathEnvVar = "KITE_TOOL_PATH"

// kitePrefix marks environment variables that belong to the invoking kite
// process and must not leak into the isolated context.
const kitePrefix = "KITE_"

// isolatedEnviron constructs the environment for the isolated execution
// context: the invoking process's foundational environment with all KITE_*
// task state stripped, the tool path list, and any per-invocation extras.
func isolatedEnviron(ctx *ExecutionContext) []string {
	env := filterTaskEnv(os.Environ())
	if ctx.Environment != nil && len(ctx.Environment.EnvPaths) > 0 {
		env = append(env, ToolPathEnvVar+"="+strings.Join(ctx.Environment.EnvPaths, string(os.PathListSeparator)))
	}
	env = append(env, envToSlice(ctx.ExtraEnv)...)
	return env
}

// filterTaskEnv removes KITE_* variables from an environment slice so the
// invoking process's task-specific state does not leak into the tool, and
// tools that invoke kite recursively start clean.
func filterTaskEnv(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		name, _, found := strings.Cut(e, "=")
		if found && strings.HasPrefix(name, kitePrefix) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// envToSlice converts an environment map to sorted "KEY=VALUE" form. Sorting
// keeps constructed environments reproducible across runs.
func envToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
