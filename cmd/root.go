package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/cli/handlers"
)

var (
	clockFlag   clockValue
	policyFlag  policyValue
	targetFlag  float64
	jsonFlag    bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "punch [span...]",
	Short: "Add up clock-in and clock-out intervals",
	Long: `punch adds up the intervals between clock-in and clock-out times and
compares the total against a daily target (8.5 hours by default).

Usage:
  punch <in>-<out> [<in>-<out>...]      Calculate total hours
  punch                                 Read intervals from stdin or prompt for them
  punch tui                             Open the interactive form
  punch serve                           Serve the form over HTTP
  punch config                          Show configuration

Span format: H[:M][am|pm]-H[:M][am|pm]
A side without minutes leaves the interval incomplete.
Examples:
  punch 9:00am-12:00pm 1:00pm-5:30pm
  punch --clock 24h 9:00-12:00 13:00-17:30`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			d := cli.GetDeps()
			d.EnableLogging(d.Stderr)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		opts := calcOptions()
		opts.JSON = jsonFlag
		handlers.Calculate(cmd.Context(), cli.GetDeps(), args, opts)
	},
}

func init() {
	rootCmd.PersistentFlags().Var(&clockFlag, "clock", "Clock for entered times: 12h or 24h (default from config)")
	rootCmd.PersistentFlags().Var(&policyFlag, "policy", "Handling of incomplete intervals: partial or zero (default from config)")
	rootCmd.PersistentFlags().Float64Var(&targetFlag, "target", 0, "Daily target in hours (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "Log sheet events to stderr")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the result as JSON")

	_ = rootCmd.RegisterFlagCompletionFunc("clock", clockCompletions)
	_ = rootCmd.RegisterFlagCompletionFunc("policy", policyCompletions)
}

// calcOptions collects the overrides shared by every subcommand.
func calcOptions() handlers.CalcOptions {
	return handlers.CalcOptions{
		Clock:  clockFlag.clock,
		Policy: policyFlag.policy,
		Target: targetFlag,
	}
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"punch version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
