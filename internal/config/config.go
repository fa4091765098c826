package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/osutil"
	"github.com/xolan/punch/internal/sheet"
	"github.com/xolan/punch/internal/summary"
)

const (
	// AppName is the application name used for config directory
	AppName = "punch"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Clock selects the input mode: "12h" (with AM/PM) or "24h"
	Clock string `toml:"clock"`
	// ErrorPolicy decides the total while intervals are incomplete: "partial" or "zero"
	ErrorPolicy string `toml:"error_policy"`
	// AutoRecalculate recomputes the total on every edit instead of on request
	AutoRecalculate bool `toml:"auto_recalculate"`
	// TargetHours is the daily target the total is compared against
	TargetHours float64 `toml:"target_hours"`
	// Theme is the TUI color theme (bubbletint id); empty uses the default
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - clock: "12h"
// - error_policy: "partial"
// - auto_recalculate: false
// - target_hours: 8.5
func DefaultConfig() Config {
	return Config{
		Clock:           string(interval.Clock12),
		ErrorPolicy:     string(interval.PolicyPartial),
		AutoRecalculate: false,
		TargetHours:     summary.TargetHours,
		Theme:           "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory for a cross-platform XDG-compliant location.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, returning defaults when it does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize trims and lowercases enum values and fills blanks with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	c.Clock = strings.ToLower(strings.TrimSpace(c.Clock))
	if c.Clock == "" {
		c.Clock = def.Clock
	}
	if clock, err := interval.ParseClock(c.Clock); err == nil {
		c.Clock = string(clock)
	}

	c.ErrorPolicy = strings.ToLower(strings.TrimSpace(c.ErrorPolicy))
	if c.ErrorPolicy == "" {
		c.ErrorPolicy = def.ErrorPolicy
	}

	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks every value against its allowed set.
func (c Config) Validate() error {
	if _, err := interval.ParseClock(c.Clock); err != nil {
		return err
	}
	if _, err := interval.ParsePolicy(c.ErrorPolicy); err != nil {
		return err
	}
	if !(c.TargetHours > 0) {
		return fmt.Errorf("invalid target_hours %v: must be greater than 0", c.TargetHours)
	}
	return nil
}

// SheetOptions converts the config into options for a sheet. Invalid values
// fall back to defaults; call Validate first to surface them.
func (c Config) SheetOptions() sheet.Options {
	opts := sheet.DefaultOptions()
	if clock, err := interval.ParseClock(c.Clock); err == nil {
		opts.Clock = clock
	}
	if policy, err := interval.ParsePolicy(c.ErrorPolicy); err == nil {
		opts.Policy = policy
	}
	if c.TargetHours > 0 {
		opts.TargetHours = c.TargetHours
	}
	opts.AutoRecalculate = c.AutoRecalculate
	return opts
}

// GenerateSampleConfig returns the content written by "punch config --init".
func GenerateSampleConfig() string {
	return Render(DefaultConfig())
}

// Render formats cfg as a commented TOML document.
func Render(cfg Config) string {
	return fmt.Sprintf(`# punch configuration file

# Clock: "12h" (hours 1-12 with AM/PM) or "24h"
clock = %q

# What the total shows while some interval has an empty field:
# "partial" keeps the sum of the complete intervals, "zero" shows 0
error_policy = %q

# Recalculate on every edit instead of waiting for "calculate"
auto_recalculate = %t

# Daily target in hours
target_hours = %s

# TUI theme (bubbletint id, e.g. "dracula", "nord"); empty uses the default
theme = %q
`, cfg.Clock, cfg.ErrorPolicy, cfg.AutoRecalculate, formatHours(cfg.TargetHours), cfg.Theme)
}

// formatHours always includes a decimal point so TOML reads the value back
// as a float.
func formatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
