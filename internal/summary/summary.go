// Package summary turns an accumulated total into the values shown to the
// user: an H:M total and a message about the daily target.
package summary

import (
	"fmt"
	"math"

	"github.com/xolan/punch/internal/interval"
)

// TargetHours is the default daily target.
const TargetHours = 8.5

const (
	// IncompleteWarning is shown while any interval has an empty field.
	IncompleteWarning = "Please fill all fields to calculate total hours"
	// AchievedMessage is shown once the total reaches the target.
	AchievedMessage = "You have achieved your target!"
)

// Summary is the display-facing view of one accumulation result.
// Remaining is zero once the target is achieved.
type Summary struct {
	TotalHours  float64 `json:"total_hours"`
	TargetHours float64 `json:"target_hours"`
	Achieved    bool    `json:"achieved"`
	Remaining   float64 `json:"remaining_hours"`
	IsError     bool    `json:"is_error"`
	Incomplete  []int   `json:"incomplete,omitempty"`
}

// New builds a Summary for res against target. A non-positive target falls
// back to TargetHours.
func New(res interval.Result, target float64) Summary {
	if target <= 0 {
		target = TargetHours
	}
	s := Summary{
		TotalHours:  res.TotalHours,
		TargetHours: target,
		IsError:     res.IsError,
		Incomplete:  res.Incomplete,
	}
	if res.TotalHours >= target {
		s.Achieved = true
	} else {
		s.Remaining = target - res.TotalHours
	}
	return s
}

// Split breaks fractional hours into whole hours and rounded minutes.
// Rounding can produce 60 minutes (e.g. 7.999 gives 7 and 60); the value is
// not carried into the hour.
func Split(total float64) (hours, minutes int) {
	h := math.Floor(total)
	return int(h), int(math.Round((total - h) * 60))
}

// FormatHours renders hours as "H:M" without zero padding, so 7.0 is "7:0"
// and 7.5 is "7:30". Negative and NaN values render as "0:00".
func FormatHours(total float64) string {
	if !(total >= 0) {
		return "0:00"
	}
	h, m := Split(total)
	return fmt.Sprintf("%d:%d", h, m)
}

// TotalDisplay is the formatted total.
func (s Summary) TotalDisplay() string {
	return FormatHours(s.TotalHours)
}

// TargetMessage describes the distance to the target.
func (s Summary) TargetMessage() string {
	if s.Achieved {
		return AchievedMessage
	}
	return fmt.Sprintf("Remaining Time: %s hours", FormatHours(s.Remaining))
}

// Warning returns IncompleteWarning when the result is flagged, else "".
func (s Summary) Warning() string {
	if s.IsError {
		return IncompleteWarning
	}
	return ""
}
