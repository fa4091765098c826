package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/config"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/service"
)

// setupCmdTest installs deps with captured output and a temp config path,
// and restores the global deps and flag state when the test ends.
func setupCmdTest(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()

	cfg := config.DefaultConfig()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	d := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: service.NewServicesWithPath(configPath, cfg, nil),
		Config:   cfg,
		IsInteractive: func() bool {
			return false
		},
		Prompt: func(interval.Clock) ([]string, error) {
			t.Error("unexpected prompt")
			return nil, nil
		},
	}

	original := cli.GetDeps()
	cli.SetDeps(d)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	t.Cleanup(func() {
		cli.SetDeps(original)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})
	return d, stdout, stderr, &exitCode
}

// resetFlags clears flag values left behind by a previous Execute.
func resetFlags() {
	clockFlag = clockValue{}
	policyFlag = policyValue{}
	targetFlag = 0
	jsonFlag = false
	verboseFlag = false
	configInitFlag = false
	servePort = 8080
	serveHost = "localhost"
	_ = rootCmd.PersistentFlags().Set("tui", "false")
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
