package main

import (
	"fmt"
	"os"

	"github.com/xolan/punch/cmd"
	"github.com/xolan/punch/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Failed to determine config file location: %v\n", err)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
