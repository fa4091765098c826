package cli

import (
	"io"
	"os"

	"github.com/xolan/punch/internal/config"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/osutil"
	"github.com/xolan/punch/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services
	Config   config.Config

	// IsInteractive reports whether stdin is a terminal
	IsInteractive func() bool
	// Prompt collects spans from the user when none are given
	Prompt func(clock interval.Clock) ([]string, error)
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	configPath, err := config.GetConfigPath()
	if err == nil {
		if loadedCfg, err := config.LoadOrDefault(configPath); err == nil {
			cfg = loadedCfg
		}
	}

	var logOut io.Writer
	if osutil.DebugEnabled() {
		logOut = os.Stderr
	}
	services := service.NewServicesWithPath(configPath, cfg, logOut)

	return NewDeps(services, cfg)
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services, cfg config.Config) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   cfg,
		IsInteractive: func() bool {
			return osutil.IsTerminal(os.Stdin)
		},
		Prompt: PromptSpans,
	}
}

// EnableLogging routes sheet event logs to w for the rest of the run.
func (d *Deps) EnableLogging(w io.Writer) {
	d.Services = service.NewServicesWithPath(d.Services.Config.GetPath(), d.Config, w)
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
