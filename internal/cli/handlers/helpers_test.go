package handlers

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

// setupTestDeps creates deps backed by a temp config path. Stdin is empty
// and not a terminal unless a test says otherwise.
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return newTestDeps(t, filepath.Join(t.TempDir(), "config.toml"))
}

// setupBrokenConfigDeps points the config path into a directory that does
// not exist so writes fail.
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return newTestDeps(t, filepath.Join(t.TempDir(), "missing", "dir", "config.toml"))
}

func newTestDeps(t *testing.T, configPath string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
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
	return deps, stdout, stderr, &exitCode
}
