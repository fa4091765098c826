package service

import (
	"fmt"
	"os"

	"github.com/xolan/punch/internal/config"
)

// ConfigService holds the punch settings in effect and the TOML file they
// came from. The config tab of the TUI edits it and the config command
// prints it.
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService wraps cfg, already loaded from configPath.
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the settings in effect.
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the config.toml location, which may not exist yet.
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists reports whether config.toml has been written.
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update normalizes and validates cfg, rewrites config.toml with every key
// and makes cfg current. On error the settings in effect are unchanged.
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.WriteFile(s.configPath, []byte(config.Render(cfg)), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Init writes the commented sample file. It refuses to overwrite an
// existing file.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload rereads config.toml, falling back to defaults when it is gone.
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}
