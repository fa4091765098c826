package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestRunServe_StopsOnCancel(t *testing.T) {
	_, stdout, stderr, exitCode := setupCmdTest(t)
	serveHost = "127.0.0.1"
	servePort = 0
	clockFlag = clockValue{clock: "24h"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runServe(ctx)

	if *exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d (stderr: %s)", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Serving punch (24h clock) on http://127.0.0.1:0") {
		t.Errorf("Expected serving banner, got: %s", stdout.String())
	}
}

func TestServeCmd_Flags(t *testing.T) {
	port := serveCmd.Flags().Lookup("port")
	if port == nil || port.DefValue != "8080" {
		t.Errorf("Expected --port default 8080, got %+v", port)
	}
	host := serveCmd.Flags().Lookup("host")
	if host == nil || host.DefValue != "localhost" {
		t.Errorf("Expected --host default localhost, got %+v", host)
	}
}
