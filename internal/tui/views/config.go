package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/punch/internal/config"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/service"
	"github.com/xolan/punch/internal/tui/ui"
)

// setting is one editable row of the config view.
type setting int

const (
	settingClock setting = iota
	settingPolicy
	settingAuto
	settingTarget
	settingTheme
)

var settingNames = []string{"clock", "error_policy", "auto_recalculate", "target_hours", "theme"}

// ConfigModel is the model for the config view
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string
	cursor    setting
	err       error

	// Target hours editing
	editingTarget bool
	targetInput   textinput.Model

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	targetInput := textinput.New()
	targetInput.Placeholder = "8.5"
	targetInput.CharLimit = 6
	targetInput.Width = 8

	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		targetInput:   targetInput,
		themes:        themeProvider.AvailableThemes(),
	}
	m.setConfig(services.Config.Get())
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if m.editingTarget {
			return m.handleTargetInput(msg)
		}
		return m.handleNormalMode(msg)

	case configLoadedMsg:
		m.path = msg.path
		m.exists = msg.exists
		m.setConfig(msg.config)

	case ui.ConfigSavedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.exists = true
		}
		m.setConfig(msg.Config)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, nil
	}

	return m, nil
}

func (m ConfigModel) handleNormalMode(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if int(m.cursor) < len(settingNames)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.openThemeSelector()
		return m, nil

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Toggle):
		return m.activate()
	}

	return m, nil
}

// activate changes the setting under the cursor: enums cycle, booleans
// flip, the target opens an input and the theme opens the selector.
func (m ConfigModel) activate() (ConfigModel, tea.Cmd) {
	cfg := m.config
	m.err = nil

	switch m.cursor {
	case settingClock:
		cfg.Clock = string(nextClock(interval.Clock(cfg.Clock)))
	case settingPolicy:
		cfg.ErrorPolicy = string(nextPolicy(interval.ErrorPolicy(cfg.ErrorPolicy)))
	case settingAuto:
		cfg.AutoRecalculate = !cfg.AutoRecalculate
	case settingTarget:
		m.editingTarget = true
		m.targetInput.SetValue(strconv.FormatFloat(cfg.TargetHours, 'f', -1, 64))
		m.targetInput.CursorEnd()
		m.targetInput.Focus()
		return m, textinput.Blink
	case settingTheme:
		m.openThemeSelector()
		return m, nil
	}

	return m, m.saveConfig(cfg)
}

func (m ConfigModel) handleTargetInput(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		m.editingTarget = false
		m.targetInput.Blur()
		hours, err := strconv.ParseFloat(strings.TrimSpace(m.targetInput.Value()), 64)
		if err != nil || !(hours > 0) {
			m.err = fmt.Errorf("invalid target hours %q: must be a number greater than 0", m.targetInput.Value())
			return m, nil
		}
		cfg := m.config
		cfg.TargetHours = hours
		return m, m.saveConfig(cfg)
	case key.Matches(msg, m.keys.Back): // Escape
		m.editingTarget = false
		m.targetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	return m, cmd
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		return m, m.requestThemeChange(m.themes[m.themeCursor])

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.syncThemeCursor()
		return m, nil
	}

	return m, nil
}

func (m *ConfigModel) openThemeSelector() {
	m.selectingTheme = true
	m.syncThemeCursor()
	m.updateThemeOffset()
}

// syncThemeCursor moves the selector cursor onto the active theme.
func (m *ConfigModel) syncThemeCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			return
		}
	}
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

func (m *ConfigModel) setConfig(cfg config.Config) {
	m.config = cfg
	m.themeName = cfg.Theme
	if m.themeName == "" {
		m.themeName = ui.DefaultTheme
	}
	m.syncThemeCursor()
}

// requestThemeChange creates a command to request a theme change by name
func (m ConfigModel) requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// saveConfig writes cfg and reports the outcome as a ConfigSavedMsg.
func (m ConfigModel) saveConfig(cfg config.Config) tea.Cmd {
	svc := m.services.Config
	return func() tea.Msg {
		err := svc.Update(cfg)
		return ui.ConfigSavedMsg{Config: svc.Get(), Err: err}
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("Config file:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.path))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat("─", max(20, min(50, m.width))))
	b.WriteString("\n\n")

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}

	for i, name := range settingNames {
		b.WriteString(m.renderSetting(setting(i), name))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Enter/space to change, t for themes"))

	return b.String()
}

func (m ConfigModel) renderSetting(s setting, name string) string {
	var value string
	switch s {
	case settingClock:
		value = m.config.Clock
	case settingPolicy:
		value = m.config.ErrorPolicy
	case settingAuto:
		value = strconv.FormatBool(m.config.AutoRecalculate)
	case settingTarget:
		if m.editingTarget {
			value = m.targetInput.View()
		} else {
			value = strconv.FormatFloat(m.config.TargetHours, 'f', -1, 64)
		}
	case settingTheme:
		value = m.themeName
	}

	marker := "  "
	label := m.styles.StatLabel.Render(name + ":")
	if s == m.cursor {
		marker = "▸ "
		label = m.styles.CellSelected.Render(fmt.Sprintf("%-20s", name+":"))
	}
	if s == settingTarget && m.editingTarget {
		return marker + label + " " + value
	}
	return marker + label + " " + m.styles.StatValue.Render(value)
}

// renderThemeSelector renders the theme selection list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		if i == m.themeCursor {
			b.WriteString(m.styles.CellSelected.Render("▸ " + theme))
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(" (current)"))
			}
		} else {
			b.WriteString("  ")
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(theme + " (current)"))
			} else {
				b.WriteString(m.styles.StatValue.Render(theme))
			}
		}
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m ConfigModel) IsInputMode() bool {
	return m.editingTarget || m.selectingTheme
}

// loadConfig creates a command to load config
func (m ConfigModel) loadConfig() tea.Cmd {
	svc := m.services.Config
	return func() tea.Msg {
		return configLoadedMsg{
			config: svc.Get(),
			path:   svc.GetPath(),
			exists: svc.Exists(),
		}
	}
}

func nextClock(c interval.Clock) interval.Clock {
	for i, v := range interval.ValidClocks {
		if v == c {
			return interval.ValidClocks[(i+1)%len(interval.ValidClocks)]
		}
	}
	return interval.ValidClocks[0]
}

func nextPolicy(p interval.ErrorPolicy) interval.ErrorPolicy {
	for i, v := range interval.ValidPolicies {
		if v == p {
			return interval.ValidPolicies[(i+1)%len(interval.ValidPolicies)]
		}
	}
	return interval.ValidPolicies[0]
}
