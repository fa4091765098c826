package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/osutil"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Clock != "12h" {
		t.Errorf("DefaultConfig().Clock = %q, expected %q", cfg.Clock, "12h")
	}
	if cfg.ErrorPolicy != "partial" {
		t.Errorf("DefaultConfig().ErrorPolicy = %q, expected %q", cfg.ErrorPolicy, "partial")
	}
	if cfg.AutoRecalculate {
		t.Error("DefaultConfig().AutoRecalculate should be false")
	}
	if cfg.TargetHours != 8.5 {
		t.Errorf("DefaultConfig().TargetHours = %v, expected 8.5", cfg.TargetHours)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name           string
		configContent  string
		expectedClock  string
		expectedPolicy string
		expectedAuto   bool
		expectedTarget float64
		expectedTheme  string
	}{
		{
			name: "all fields set",
			configContent: `clock = "24h"
error_policy = "zero"
auto_recalculate = true
target_hours = 7.5
theme = "nord"`,
			expectedClock:  "24h",
			expectedPolicy: "zero",
			expectedAuto:   true,
			expectedTarget: 7.5,
			expectedTheme:  "nord",
		},
		{
			name:           "only clock set",
			configContent:  `clock = "24h"`,
			expectedClock:  "24h",
			expectedPolicy: "partial",
			expectedTarget: 8.5,
		},
		{
			name:           "empty file uses defaults",
			configContent:  "",
			expectedClock:  "12h",
			expectedPolicy: "partial",
			expectedTarget: 8.5,
		},
		{
			name: "values are normalized",
			configContent: `clock = " 24 "
error_policy = "ZERO"`,
			expectedClock:  "24h",
			expectedPolicy: "zero",
			expectedTarget: 8.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempConfigFile(t, tt.configContent)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			if cfg.Clock != tt.expectedClock {
				t.Errorf("Clock = %q, expected %q", cfg.Clock, tt.expectedClock)
			}
			if cfg.ErrorPolicy != tt.expectedPolicy {
				t.Errorf("ErrorPolicy = %q, expected %q", cfg.ErrorPolicy, tt.expectedPolicy)
			}
			if cfg.AutoRecalculate != tt.expectedAuto {
				t.Errorf("AutoRecalculate = %v, expected %v", cfg.AutoRecalculate, tt.expectedAuto)
			}
			if cfg.TargetHours != tt.expectedTarget {
				t.Errorf("TargetHours = %v, expected %v", cfg.TargetHours, tt.expectedTarget)
			}
			if cfg.Theme != tt.expectedTheme {
				t.Errorf("Theme = %q, expected %q", cfg.Theme, tt.expectedTheme)
			}
		})
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		errContains   string
	}{
		{"bad clock", `clock = "36h"`, "invalid clock"},
		{"bad policy", `error_policy = "keep"`, "invalid error policy"},
		{"zero target", `target_hours = 0.0`, "target_hours"},
		{"negative target", `target_hours = -1.0`, "target_hours"},
		{"malformed toml", `clock = `, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempConfigFile(t, tt.configContent)
			cfg, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
			if cfg != DefaultConfig() {
				t.Errorf("expected defaults on error, got %+v", cfg)
			}
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestGenerateSampleConfig_RoundTrip(t *testing.T) {
	path := createTempConfigFile(t, GenerateSampleConfig())
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, expected defaults", cfg)
	}
}

func TestRender_WholeTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetHours = 8
	cfg.Clock = "24h"

	path := createTempConfigFile(t, Render(cfg))
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("rendered config failed to load: %v", err)
	}
	if loaded.TargetHours != 8 {
		t.Errorf("TargetHours = %v, expected 8", loaded.TargetHours)
	}
	if loaded.Clock != "24h" {
		t.Errorf("Clock = %q, expected 24h", loaded.Clock)
	}
}

func TestSheetOptions(t *testing.T) {
	cfg := Config{
		Clock:           "24h",
		ErrorPolicy:     "zero",
		AutoRecalculate: true,
		TargetHours:     6,
	}
	opts := cfg.SheetOptions()
	if opts.Clock != interval.Clock24 {
		t.Errorf("Clock = %q, expected 24h", opts.Clock)
	}
	if opts.Policy != interval.PolicyZero {
		t.Errorf("Policy = %q, expected zero", opts.Policy)
	}
	if !opts.AutoRecalculate {
		t.Error("expected AutoRecalculate")
	}
	if opts.TargetHours != 6 {
		t.Errorf("TargetHours = %v, expected 6", opts.TargetHours)
	}

	// Invalid values fall back to defaults
	opts = Config{Clock: "bogus", ErrorPolicy: "bogus"}.SheetOptions()
	if opts.Clock != interval.Clock12 || opts.Policy != interval.PolicyPartial || opts.TargetHours != 8.5 {
		t.Errorf("expected default options, got %+v", opts)
	}
}

type failingProvider struct {
	dirErr   error
	mkdirErr error
	dir      string
}

func (p failingProvider) UserConfigDir() (string, error) { return p.dir, p.dirErr }
func (p failingProvider) MkdirAll(string, os.FileMode) error {
	return p.mkdirErr
}

func TestGetConfigPath(t *testing.T) {
	defer osutil.ResetProvider()

	dir := t.TempDir()
	osutil.SetProvider(failingProvider{dir: dir})
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	expected := filepath.Join(dir, AppName, ConfigFile)
	if path != expected {
		t.Errorf("GetConfigPath() = %q, expected %q", path, expected)
	}

	osutil.SetProvider(failingProvider{dirErr: errors.New("no home")})
	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when config dir is unavailable")
	}

	osutil.SetProvider(failingProvider{dir: dir, mkdirErr: errors.New("read-only")})
	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when config dir cannot be created")
	}
}
