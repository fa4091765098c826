// Package cli provides the CLI presentation layer for the punch application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/sheet"
	"github.com/xolan/punch/internal/summary"
)

// FormatDelta formats one interval's hours. Unlike the total, a negative
// value keeps its sign so out-before-in mistakes stay visible.
func FormatDelta(hours float64) string {
	if hours < 0 {
		return "-" + summary.FormatHours(-hours)
	}
	return summary.FormatHours(hours)
}

// Pluralize returns the singular or plural form of a word based on count.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// IntervalLine is one row of the interval listing.
type IntervalLine struct {
	Index string
	Span  string
	Hours string
}

// BuildIntervalLines formats every interval of st as aligned columns.
func BuildIntervalLines(st sheet.State) []IntervalLine {
	clock := st.Options().Clock
	ivs := st.Intervals()
	lines := make([]IntervalLine, len(ivs))
	for i, iv := range ivs {
		hours := "incomplete"
		if d, ok := iv.Delta(clock); ok {
			hours = FormatDelta(d)
		}
		lines[i] = IntervalLine{
			Index: fmt.Sprintf("[%d]", i+1),
			Span:  interval.FormatSpan(iv, clock),
			Hours: hours,
		}
	}
	return lines
}

// WriteSheet prints the interval listing followed by the summary.
func WriteSheet(w io.Writer, st sheet.State) {
	lines := BuildIntervalLines(st)

	maxIndex, maxSpan := 0, 0
	for _, l := range lines {
		maxIndex = max(maxIndex, len(l.Index))
		maxSpan = max(maxSpan, len(l.Span))
	}

	_, _ = fmt.Fprintf(w, "%d %s (%s clock):\n", len(lines), Pluralize("interval", len(lines)), st.Options().Clock)
	for _, l := range lines {
		_, _ = fmt.Fprintf(w, "  %-*s %-*s  %s\n", maxIndex, l.Index, maxSpan, l.Span, l.Hours)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 40))
	WriteSummary(w, st.Summary())
}

// WriteSummary prints the total, the target message and the incomplete
// warning when present.
func WriteSummary(w io.Writer, s summary.Summary) {
	_, _ = fmt.Fprintf(w, "Total Hours: %s\n", s.TotalDisplay())
	_, _ = fmt.Fprintln(w, s.TargetMessage())
	if warning := s.Warning(); warning != "" {
		_, _ = fmt.Fprintf(w, "Warning: %s (%s)\n", warning, formatIndexes(s.Incomplete))
	}
}

// SheetJSON is the --json output shape.
type SheetJSON struct {
	Clock         interval.Clock       `json:"clock"`
	Policy        interval.ErrorPolicy `json:"error_policy"`
	Intervals     []interval.Interval  `json:"intervals"`
	Summary       summary.Summary      `json:"summary"`
	TotalDisplay  string               `json:"total_display"`
	TargetMessage string               `json:"target_message"`
}

// NewSheetJSON builds the JSON view of st. Meridiems are left out on the
// 24h clock, where they are ignored.
func NewSheetJSON(st sheet.State) SheetJSON {
	s := st.Summary()
	ivs := st.Intervals()
	if st.Options().Clock == interval.Clock24 {
		for i := range ivs {
			ivs[i].InMeridiem, ivs[i].OutMeridiem = "", ""
		}
	}
	return SheetJSON{
		Clock:         st.Options().Clock,
		Policy:        st.Options().Policy,
		Intervals:     ivs,
		Summary:       s,
		TotalDisplay:  s.TotalDisplay(),
		TargetMessage: s.TargetMessage(),
	}
}

// formatIndexes renders zero-based indexes as the 1-based numbers shown in listings.
func formatIndexes(indexes []int) string {
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = fmt.Sprintf("[%d]", idx+1)
	}
	return Pluralize("interval", len(indexes)) + " " + strings.Join(parts, ", ")
}
