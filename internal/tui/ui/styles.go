package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Sheet grid
	CellSelected lipgloss.Style
	CellNormal   lipgloss.Style
	CellEmpty    lipgloss.Style
	RowIndex     lipgloss.Style
	RowHours     lipgloss.Style
	ColumnHeader lipgloss.Style

	// Totals
	Total     lipgloss.Style
	TargetMet lipgloss.Style
	Pending   lipgloss.Style

	// Labels
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Input
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	err       lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),  // Green
		warning:   lipgloss.Color("214"), // Orange
		err:       lipgloss.Color("196"), // Red
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles, focused input)
// - Secondary: Cyan (column headers, keys)
// - Accent: BrightPurple (interval hours, total)
// - Muted: BrightBlack (inactive elements, labels, empty cells)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		err:       r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		CellSelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		CellNormal: lipgloss.NewStyle().
			Foreground(p.fg),
		CellEmpty: lipgloss.NewStyle().
			Foreground(p.muted),
		RowIndex: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(6),
		RowHours: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(12).
			Align(lipgloss.Right),
		ColumnHeader: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),

		Total: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		TargetMet: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(p.fg),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.err),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
