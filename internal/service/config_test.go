package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/punch/internal/config"
)

func TestConfigService_Get(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := NewConfigService("/tmp/config.toml", cfg)

	if svc.Get() != cfg {
		t.Errorf("expected %+v, got %+v", cfg, svc.Get())
	}
	if svc.GetPath() != "/tmp/config.toml" {
		t.Errorf("expected path '/tmp/config.toml', got %q", svc.GetPath())
	}
}

func TestConfigService_Exists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	newCfg := config.DefaultConfig()
	newCfg.Clock = "24H"
	newCfg.Theme = "nord"

	if err := svc.Update(newCfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.Get().Clock != "24h" {
		t.Errorf("expected normalized clock '24h', got %q", svc.Get().Clock)
	}

	// Reload from disk and compare
	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if svc.Get().Theme != "nord" {
		t.Errorf("expected theme 'nord' after reload, got %q", svc.Get().Theme)
	}
}

func TestConfigService_Update_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	bad := config.DefaultConfig()
	bad.ErrorPolicy = "keep"

	err := svc.Update(bad)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("expected invalid configuration error, got %v", err)
	}
	if svc.Exists() {
		t.Error("invalid config should not be written")
	}
	if svc.Get().ErrorPolicy != "partial" {
		t.Errorf("in-memory config should be unchanged, got %q", svc.Get().ErrorPolicy)
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if !svc.Exists() {
		t.Fatal("expected config file to exist after Init")
	}

	if err := svc.Init(); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestConfigService_Reload_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(`clock = "36h"`), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Reload(); err == nil {
		t.Error("expected error for invalid config on disk")
	}
}

func TestConfigService_Reload_MissingFileUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	cfg.Clock = "24h"
	svc := NewConfigService(configPath, cfg)

	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if svc.Get().Clock != config.DefaultConfig().Clock {
		t.Errorf("expected default clock after reload, got %q", svc.Get().Clock)
	}
}
