// Package tui provides the Terminal User Interface for the punch application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/punch/internal/service"
	"github.com/xolan/punch/internal/tui/ui"
	"github.com/xolan/punch/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabSheet Tab = iota
	TabConfig
)

var tabNames = []string{"Sheet", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	sheetView  views.SheetModel
	configView views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabSheet,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		sheetView:     views.NewSheetModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.sheetView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While a view captures input only ctrl+c gets through.
		capturing := m.isCapturingKeys()

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabSheet
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.sheetView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.sheetView, _ = m.sheetView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)

	case ui.ConfigSavedMsg:
		// Both views depend on the config, whichever tab is active.
		m.sheetView, _ = m.sheetView.Update(msg)
		m.configView, _ = m.configView.Update(msg)
		return m, nil
	}

	switch m.activeTab {
	case TabSheet:
		m.sheetView, cmd = m.sheetView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabSheet:
		b.WriteString(m.sheetView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabSheet:
			parts = append(parts, m.renderKeyHelp("enter", "edit"))
			parts = append(parts, m.renderKeyHelp("space", "am/pm"))
			parts = append(parts, m.renderKeyHelp("n", "add"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("c", "calculate"))
			parts = append(parts, m.renderKeyHelp("r", "reset"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("enter", "change"))
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-2", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabSheet:
		return m.sheetView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabSheet:
		return m.sheetView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	svc := m.services.Config
	return func() tea.Msg {
		cfg := svc.Get()
		cfg.Theme = themeName
		err := svc.Update(cfg)
		return ui.ConfigSavedMsg{Config: svc.Get(), Err: err}
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-2    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabSheet:
		help.WriteString(m.styles.StatLabel.Render("Sheet:"))
		help.WriteString("\n")
		help.WriteString("  h/j/k/l    Move between cells\n")
		help.WriteString("  Enter      Edit cell (toggle AM/PM)\n")
		help.WriteString("  Space      Toggle AM/PM\n")
		help.WriteString("  n          Add interval\n")
		help.WriteString("  d          Delete interval\n")
		help.WriteString("  c          Calculate total\n")
		help.WriteString("  r          Reset sheet\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate settings\n")
		help.WriteString("  Enter      Change setting\n")
		help.WriteString("  t          Open theme selector\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
