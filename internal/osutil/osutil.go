// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"

	"github.com/mattn/go-isatty"
)

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in config.GetConfigPath.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS pseudo terminals on Windows. A nil file is never a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DebugEnabled reports whether the PUNCH_DEBUG environment variable is set.
func DebugEnabled() bool {
	return os.Getenv("PUNCH_DEBUG") != ""
}
