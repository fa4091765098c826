package service

import (
	"io"

	"github.com/xolan/punch/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Config *ConfigService
	Sheet  *SheetService
}

// NewServices creates a new Services instance with the default config path.
// Sheet events are logged to logOut when it is non-nil.
func NewServices(logOut io.Writer) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPath(configPath, cfg, logOut), nil
}

// NewServicesWithPath creates a new Services instance with a custom config path (useful for testing)
func NewServicesWithPath(configPath string, cfg config.Config, logOut io.Writer) *Services {
	return &Services{
		Config: NewConfigService(configPath, cfg),
		Sheet:  NewSheetService(cfg.SheetOptions(), NewLogSheetObserver(logOut)),
	}
}
