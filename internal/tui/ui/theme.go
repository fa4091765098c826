package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the default theme used when no theme is configured
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a new ThemeProvider with the specified initial theme.
// An empty or unknown theme leaves DefaultTheme selected.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, all...)}
	if initialTheme != "" {
		tp.SetTheme(initialTheme)
	}
	return tp
}

// SetTheme sets the current theme by id.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// Known reports whether name is an available theme id.
func (tp *ThemeProvider) Known(name string) bool {
	for _, id := range tp.registry.TintIDs() {
		if id == name {
			return true
		}
	}
	return false
}

// CurrentName returns the id of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns a sorted list of all available theme ids.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns a Styles struct configured for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
