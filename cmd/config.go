package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/cli/handlers"
)

var configInitFlag bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for punch.

Shows the configuration file location, whether it exists, and all current settings.
Without a config file punch uses these defaults:
  - clock: 12h
  - error_policy: partial
  - auto_recalculate: false
  - target_hours: 8.5
  - theme: (default)

Examples:
  punch config                     Show all current settings
  punch config --init              Create a sample config file

Configuration file location:
  ~/.config/punch/config.toml      Linux
  ~/Library/Application Support/punch/config.toml   macOS
  %AppData%\punch\config.toml      Windows

Flags such as --clock and --target override the file for one invocation.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := cli.GetDeps()
		if configInitFlag {
			handlers.InitConfig(d)
			return
		}
		handlers.ShowConfig(d)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a sample config file")
}
