package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/punch/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "clock:            %s\n", cfg.Clock)
	_, _ = fmt.Fprintf(deps.Stdout, "error_policy:     %s\n", cfg.ErrorPolicy)
	_, _ = fmt.Fprintf(deps.Stdout, "auto_recalculate: %t\n", cfg.AutoRecalculate)
	_, _ = fmt.Fprintf(deps.Stdout, "target_hours:     %v\n", cfg.TargetHours)
	theme := cfg.Theme
	if theme == "" {
		theme = "(default)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "theme:            %s\n", theme)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
