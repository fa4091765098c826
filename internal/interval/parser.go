package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSpan is returned when a span string cannot be parsed.
var ErrInvalidSpan = errors.New("invalid span")

// sidePattern matches one side of a span: H, H:M, or H:M followed by an
// optional am/pm suffix (e.g., "9", "9:30", "9:30pm", "12 AM").
// Hour and minute may each be blank, which leaves that field unset.
var sidePattern = regexp.MustCompile(`^(\d*)(?::(\d*))?\s*([aApP][mM])?$`)

// ParseSpan parses an "IN-OUT" span such as "9:00-17:30" or
// "9:00am-5:30pm" into an Interval.
// A side without minutes leaves the minute unset, so "9-17" parses into an
// incomplete interval rather than failing. Meridiem suffixes are only
// accepted on the 12-hour clock; a missing suffix defaults to AM.
func ParseSpan(input string, clock Clock) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: expected IN-OUT, got %q", ErrInvalidSpan, input)
	}

	iv := Empty()
	var err error
	iv.InHour, iv.InMinute, iv.InMeridiem, err = parseSide(parts[0], clock)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: in time %q: %v", ErrInvalidSpan, parts[0], err)
	}
	iv.OutHour, iv.OutMinute, iv.OutMeridiem, err = parseSide(parts[1], clock)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: out time %q: %v", ErrInvalidSpan, parts[1], err)
	}
	return iv, nil
}

func parseSide(side string, clock Clock) (hour, minute string, m Meridiem, err error) {
	matches := sidePattern.FindStringSubmatch(strings.TrimSpace(side))
	if matches == nil {
		return "", "", "", fmt.Errorf("expected H:M")
	}

	m = AM
	if matches[3] != "" {
		if clock != Clock12 {
			return "", "", "", fmt.Errorf("am/pm is only allowed with the 12h clock")
		}
		m, err = ParseMeridiem(matches[3])
		if err != nil {
			return "", "", "", err
		}
	}
	return matches[1], matches[2], m, nil
}

// FormatSpan renders an interval back into span form. Unset fields render
// as "_" so incomplete intervals stay readable.
func FormatSpan(iv Interval, clock Clock) string {
	return formatSide(iv.InHour, iv.InMinute, iv.InMeridiem, clock) + "-" +
		formatSide(iv.OutHour, iv.OutMinute, iv.OutMeridiem, clock)
}

func formatSide(hour, minute string, m Meridiem, clock Clock) string {
	s := blank(hour) + ":" + blank(minute)
	if clock == Clock12 {
		if m == "" {
			m = AM
		}
		s += strings.ToLower(string(m))
	}
	return s
}

func blank(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_"
	}
	return strings.TrimSpace(s)
}
