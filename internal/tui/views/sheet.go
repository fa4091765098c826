package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/service"
	"github.com/xolan/punch/internal/sheet"
	"github.com/xolan/punch/internal/tui/ui"
)

// SheetModel is the model for the sheet view: one row per interval, one
// cell per editable field.
type SheetModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	state  sheet.State
	row    int
	col    int
	err    error

	// Cell editing
	editing bool
	input   textinput.Model
}

// NewSheetModel creates a new sheet view model
func NewSheetModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SheetModel {
	input := textinput.New()
	input.Placeholder = "--"
	input.CharLimit = 2
	input.Width = 3
	input.Prompt = ""

	return SheetModel{
		services: services,
		styles:   styles,
		keys:     keys,
		state:    services.Sheet.State(),
		input:    input,
	}
}

// Init implements tea.Model
func (m SheetModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SheetModel) Update(msg tea.Msg) (SheetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditMode(msg)
		}
		return m.handleNormalMode(msg)

	case ui.ConfigSavedMsg:
		if msg.Err == nil {
			m.state = m.services.Sheet.SetOptions(msg.Config.SheetOptions())
			m.clampCursor()
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m SheetModel) handleNormalMode(msg tea.KeyMsg) (SheetModel, tea.Cmd) {
	ctx := context.Background()
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.state.Len()-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.fields())-1 {
			m.col++
		}

	case key.Matches(msg, m.keys.Select):
		if m.field().IsMeridiem() {
			m.toggleMeridiem(ctx)
			return m, nil
		}
		m.editing = true
		m.input.SetValue(m.cellValue(m.row, m.field()))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if m.field().IsMeridiem() {
			m.toggleMeridiem(ctx)
		}

	case key.Matches(msg, m.keys.Add):
		m.state = m.services.Sheet.AddInterval(ctx)
		m.row = m.state.Len() - 1
		m.col = 0

	case key.Matches(msg, m.keys.Delete):
		m.state, m.err = m.services.Sheet.DeleteInterval(ctx, m.row)
		m.clampCursor()

	case key.Matches(msg, m.keys.Calculate):
		m.state = m.services.Sheet.Calculate(ctx)

	case key.Matches(msg, m.keys.Reset):
		m.state = m.services.Sheet.Reset(ctx)
		m.row, m.col = 0, 0
	}

	return m, nil
}

func (m SheetModel) handleEditMode(msg tea.KeyMsg) (SheetModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		value := strings.TrimSpace(m.input.Value())
		m.state, m.err = m.services.Sheet.SetField(context.Background(), m.row, m.field(), value)
		m.editing = false
		m.input.Blur()
		if m.err == nil && m.col < len(m.fields())-1 {
			m.col++
		}
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SheetModel) toggleMeridiem(ctx context.Context) {
	current := interval.Meridiem(m.cellValue(m.row, m.field()))
	m.state, m.err = m.services.Sheet.SetField(ctx, m.row, m.field(), string(current.Toggle()))
}

// fields returns the editable columns for the current clock.
func (m SheetModel) fields() []sheet.Field {
	return sheet.Fields(m.state.Options().Clock)
}

// field returns the field under the cursor.
func (m SheetModel) field() sheet.Field {
	fields := m.fields()
	if m.col >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[m.col]
}

func (m SheetModel) cellValue(row int, f sheet.Field) string {
	iv, err := m.state.Interval(row)
	if err != nil {
		return ""
	}
	return f.Get(iv)
}

// clampCursor keeps the cursor inside the grid after rows or columns vanish.
func (m *SheetModel) clampCursor() {
	m.row = min(m.row, m.state.Len()-1)
	m.row = max(m.row, 0)
	m.col = min(m.col, len(m.fields())-1)
}

// View implements tea.Model
func (m SheetModel) View() string {
	var b strings.Builder

	opts := m.state.Options()
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Work Hours (%s clock)", opts.Clock)))
	b.WriteString("\n\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	for i, iv := range m.state.Intervals() {
		b.WriteString(m.renderRow(i, iv))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(20, min(50, m.width))))
	b.WriteString("\n\n")
	b.WriteString(m.renderSummary())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return b.String()
}

func (m SheetModel) renderHeader() string {
	in := "In"
	out := "Out"
	width := 5
	if m.state.Options().Clock == interval.Clock12 {
		width = 8
	}
	return m.styles.RowIndex.Render("") +
		m.styles.ColumnHeader.Render(fmt.Sprintf("%-*s", width+fieldGap, in)) +
		m.styles.ColumnHeader.Render(fmt.Sprintf("%-*s", width, out)) +
		m.styles.ColumnHeader.Render(fmt.Sprintf("%12s", "Hours"))
}

// fieldGap is the width of the arrow between the in and out groups.
const fieldGap = 5

func (m SheetModel) renderRow(row int, iv interval.Interval) string {
	var b strings.Builder
	b.WriteString(m.styles.RowIndex.Render(fmt.Sprintf("[%d]", row+1)))
	for _, f := range m.fields() {
		b.WriteString(fieldPrefix(f))
		b.WriteString(m.renderCell(row, f, f.Get(iv)))
	}

	hours := "--"
	if d, ok := iv.Delta(m.state.Options().Clock); ok {
		hours = cli.FormatDelta(d)
	}
	b.WriteString(m.styles.RowHours.Render(hours))
	return b.String()
}

func (m SheetModel) renderCell(row int, f sheet.Field, value string) string {
	selected := row == m.row && f == m.field()
	if selected && m.editing {
		return m.input.View()
	}

	style := m.styles.CellNormal
	if strings.TrimSpace(value) == "" {
		value = "--"
		style = m.styles.CellEmpty
	}
	if selected {
		style = m.styles.CellSelected
	}
	return style.Render(fmt.Sprintf("%2s", value))
}

func fieldPrefix(f sheet.Field) string {
	switch f {
	case sheet.InMinute, sheet.OutMinute:
		return ":"
	case sheet.InMeridiem, sheet.OutMeridiem:
		return " "
	case sheet.OutHour:
		return "  →  "
	}
	return ""
}

func (m SheetModel) renderSummary() string {
	var b strings.Builder
	s := m.state.Summary()

	b.WriteString(m.styles.StatLabel.Render("Total Hours:"))
	b.WriteString(" ")
	b.WriteString(m.styles.Total.Render(s.TotalDisplay()))
	b.WriteString("\n")

	if s.Achieved {
		b.WriteString(m.styles.TargetMet.Render(s.TargetMessage()))
	} else {
		b.WriteString(m.styles.Pending.Render(s.TargetMessage()))
	}
	b.WriteString("\n")

	if warning := s.Warning(); warning != "" {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("%s (%s)", warning, formatRows(s.Incomplete))))
		b.WriteString("\n")
	}

	if !m.state.Calculated() && !m.state.Options().AutoRecalculate {
		b.WriteString(m.styles.StatLabel.Render("Press c to calculate"))
		b.WriteString("\n")
	}
	return b.String()
}

// formatRows renders zero-based indexes as the row numbers shown in the grid.
func formatRows(indexes []int) string {
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = fmt.Sprintf("[%d]", idx+1)
	}
	return pluralize("row", len(indexes)) + " " + strings.Join(parts, ", ")
}

// SetSize sets the view dimensions
func (m *SheetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m SheetModel) IsInputMode() bool {
	return m.editing
}

// State returns the sheet currently shown.
func (m SheetModel) State() sheet.State {
	return m.state
}
