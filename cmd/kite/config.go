// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bubblesly/kite/internal/config"
	"github.com/bubblesly/kite/internal/issue"
)

// configCmd is the parent command for configuration management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kite configuration",
	Long: `Manage kite configuration.

Configuration is stored in:
  - Linux: ~/.config/kite/config.cue
  - macOS: ~/Library/Application Support/kite/config.cue
  - Windows: %APPDATA%\kite\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()
	fmt.Printf("  %s %s\n", CmdStyle.Render("default_runtime:"), SuccessStyle.Render(string(cfg.DefaultRuntime)))
	fmt.Printf("  %s %s\n", CmdStyle.Render("distributed_cache:"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.DistributedCache)))
	fmt.Printf("  %s %s\n", CmdStyle.Render("ui.verbose:"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))

	if len(cfg.Conf) > 0 {
		fmt.Println()
		fmt.Println(CmdStyle.Render("  conf:"))
		for _, k := range slices.Sorted(maps.Keys(cfg.Conf)) {
			fmt.Printf("    %s=%s\n", k, cfg.Conf[k])
		}
	}
	return nil
}

func showConfigPath() error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

// defaultConfigCUE is the file written by `kite config init`.
const defaultConfigCUE = `// kite configuration
default_runtime: "subprocess"
distributed_cache: true
conf: {}
ui: verbose: false
`

func initConfigFile() error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigCUE), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Println(SuccessStyle.Render("Created ") + path)
	return nil
}
