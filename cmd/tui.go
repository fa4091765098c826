package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for punch.

The form has one row per interval. Move between cells, type hours and
minutes, toggle AM/PM, and watch the total against your daily target.

Views available:
  - Sheet: Edit intervals and calculate the total
  - Config: Change clock, error policy, target and theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-2: Jump to specific view
  - h/j/k/l or arrows: Move between cells
  - n/d: Add or delete an interval
  - c: Calculate, r: Reset
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUIFunc starts the TUI; tests replace it.
var runTUIFunc = tui.Run

// runTUI runs the TUI on the shared services
func runTUI() {
	d := cli.GetDeps()
	if err := runTUIFunc(d.Services); err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error running TUI: %v\n", err)
		d.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
