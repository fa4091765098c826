// Package interval holds the clock-in/clock-out record and the arithmetic
// that turns a list of them into worked hours.
package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMeridiem is returned when a meridiem is neither AM nor PM.
var ErrInvalidMeridiem = errors.New("meridiem must be AM or PM")

// Meridiem is the AM/PM marker used in 12-hour input mode.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ParseMeridiem accepts "am"/"pm" in any case.
func ParseMeridiem(s string) (Meridiem, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(AM):
		return AM, nil
	case string(PM):
		return PM, nil
	}
	return "", fmt.Errorf("%w, got %q", ErrInvalidMeridiem, s)
}

// Toggle flips AM to PM and back.
func (m Meridiem) Toggle() Meridiem {
	if m == PM {
		return AM
	}
	return PM
}

// Clock selects how hour fields are interpreted.
type Clock string

const (
	// Clock12 reads hours as 1-12 plus a meridiem.
	Clock12 Clock = "12h"
	// Clock24 reads hours as 0-23 and ignores meridiems.
	Clock24 Clock = "24h"
)

// ValidClocks lists the accepted clock names.
var ValidClocks = []Clock{Clock12, Clock24}

// ParseClock accepts "12h", "24h", "12" and "24".
func ParseClock(s string) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "12h", "12":
		return Clock12, nil
	case "24h", "24":
		return Clock24, nil
	}
	return "", fmt.Errorf("invalid clock %q: must be 12h or 24h", s)
}

// Interval is one user-entered punch pair. Numeric fields are kept as the
// raw strings the user typed; an empty string means the field is unset.
type Interval struct {
	InHour      string   `json:"in_hour"`
	InMinute    string   `json:"in_minute"`
	InMeridiem  Meridiem `json:"in_meridiem,omitempty"`
	OutHour     string   `json:"out_hour"`
	OutMinute   string   `json:"out_minute"`
	OutMeridiem Meridiem `json:"out_meridiem,omitempty"`
}

// Empty returns a blank interval with both meridiems set to AM.
func Empty() Interval {
	return Interval{InMeridiem: AM, OutMeridiem: AM}
}

// Complete reports whether all four numeric fields are populated with
// numbers. Values outside the usual clock ranges still count as complete.
func (iv Interval) Complete() bool {
	_, ok := iv.values()
	return ok
}

// values parses the four numeric fields in the order
// in-hour, in-minute, out-hour, out-minute.
func (iv Interval) values() ([4]float64, bool) {
	var out [4]float64
	for i, raw := range [4]string{iv.InHour, iv.InMinute, iv.OutHour, iv.OutMinute} {
		v, ok := parseField(raw)
		if !ok {
			return out, false
		}
		out[i] = v
	}
	return out, true
}

func parseField(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// To24Hour converts a 12-hour clock hour to its 24-hour value.
// 12 maps to 0 before PM adds 12, so 12 AM is 0 and 12 PM is 12.
func To24Hour(hour float64, m Meridiem) float64 {
	h := math.Mod(hour, 12)
	if m == PM {
		h += 12
	}
	return h
}

// Delta returns the signed number of hours between the in and out times.
// An out time before the in time gives a negative value; nothing wraps
// around midnight. ok is false when the interval is incomplete.
func (iv Interval) Delta(clock Clock) (hours float64, ok bool) {
	v, ok := iv.values()
	if !ok {
		return 0, false
	}
	inHour, inMinute, outHour, outMinute := v[0], v[1], v[2], v[3]
	if clock == Clock12 {
		inHour = To24Hour(inHour, iv.InMeridiem)
		outHour = To24Hour(outHour, iv.OutMeridiem)
	}
	return (outHour - inHour) + (outMinute-inMinute)/60, true
}
