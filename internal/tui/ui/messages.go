package ui

import "github.com/xolan/punch/internal/config"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// ConfigSavedMsg is sent after a setting was written. Err is set when the
// write or validation failed, in which case Config holds the previous value.
type ConfigSavedMsg struct {
	Config config.Config
	Err    error
}
