package interval

import (
	"fmt"
	"strings"
)

// ErrorPolicy decides what the total looks like when some intervals are
// incomplete.
type ErrorPolicy string

const (
	// PolicyPartial keeps the sum of the complete intervals.
	PolicyPartial ErrorPolicy = "partial"
	// PolicyZero reports a total of exactly 0.
	PolicyZero ErrorPolicy = "zero"
)

// ValidPolicies lists the accepted error policy names.
var ValidPolicies = []ErrorPolicy{PolicyPartial, PolicyZero}

// ParsePolicy accepts "partial" or "zero" in any case.
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyPartial:
		return PolicyPartial, nil
	case PolicyZero:
		return PolicyZero, nil
	}
	return "", fmt.Errorf("invalid error policy %q: must be partial or zero", s)
}

// Result is the outcome of one accumulation pass.
type Result struct {
	TotalHours float64 `json:"total_hours"`
	IsError    bool    `json:"is_error"`
	// Incomplete holds the zero-based indices of intervals that were skipped.
	Incomplete []int `json:"incomplete,omitempty"`
}

// Accumulate sums the signed hour differences of every complete interval.
// Incomplete intervals are skipped and flag the result as an error, but
// scanning continues so every incomplete index is reported.
func Accumulate(intervals []Interval, clock Clock, policy ErrorPolicy) Result {
	var res Result
	for i, iv := range intervals {
		delta, ok := iv.Delta(clock)
		if !ok {
			res.IsError = true
			res.Incomplete = append(res.Incomplete, i)
			continue
		}
		res.TotalHours += delta
	}
	if res.IsError && policy == PolicyZero {
		res.TotalHours = 0
	}
	return res
}
