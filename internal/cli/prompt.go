package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/punch/internal/interval"
)

var (
	promptAccent = lipgloss.Color("99")
	promptFg     = lipgloss.Color("252")
	promptDim    = lipgloss.Color("240")
)

// punchHuhTheme returns the huh theme used by interactive prompts.
func punchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(promptAccent).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(promptDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(promptAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(promptAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(promptFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(promptDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(promptFg).Background(promptAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(promptDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(promptDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(promptDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(promptDim)

	return t
}

// spanPlaceholder is an example span for the given clock.
func spanPlaceholder(clock interval.Clock) string {
	if clock == interval.Clock12 {
		return "9:00am-5:30pm"
	}
	return "9:00-17:30"
}

// validateSpan returns a huh validator accepting spans for clock.
func validateSpan(clock interval.Clock) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter an interval like %s", spanPlaceholder(clock))
		}
		_, err := interval.ParseSpan(s, clock)
		return err
	}
}

// spanForm asks for one interval and whether another follows.
func spanForm(clock interval.Clock, n int, span *string, more *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Interval %d", n)).
				Description("Clock in and clock out, separated by '-'").
				Placeholder(spanPlaceholder(clock)).
				Value(span).
				Validate(validateSpan(clock)),
			huh.NewConfirm().
				Title("Add another interval?").
				Affirmative("Yes").
				Negative("No").
				Value(more),
		),
	).WithTheme(punchHuhTheme()).WithShowHelp(false)
}

// PromptSpans interactively collects spans until the user declines to add more.
func PromptSpans(clock interval.Clock) ([]string, error) {
	var spans []string
	for {
		var span string
		more := false
		if err := spanForm(clock, len(spans)+1, &span, &more).Run(); err != nil {
			return nil, err
		}
		spans = append(spans, strings.TrimSpace(span))
		if !more {
			return spans, nil
		}
	}
}
