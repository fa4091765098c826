// Package sheet models the interval form as an immutable state value.
// Every user event is a method that returns a new State; the receiver is
// never modified, so a State handed to a renderer stays valid.
package sheet

import (
	"errors"
	"fmt"

	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/summary"
)

var (
	// ErrIndexOutOfRange is returned for an interval index that does not exist.
	ErrIndexOutOfRange = errors.New("interval index out of range")
	// ErrUnknownField is returned for a field name that is not part of an interval.
	ErrUnknownField = errors.New("unknown interval field")
)

// Options control how a sheet computes its result.
type Options struct {
	Clock           interval.Clock
	Policy          interval.ErrorPolicy
	AutoRecalculate bool
	TargetHours     float64
}

// DefaultOptions matches the default configuration.
func DefaultOptions() Options {
	return Options{
		Clock:       interval.Clock12,
		Policy:      interval.PolicyPartial,
		TargetHours: summary.TargetHours,
	}
}

// State is one snapshot of the form: the intervals, the last computed
// result and the options it was computed with.
type State struct {
	opts       Options
	intervals  []interval.Interval
	result     interval.Result
	calculated bool
}

// New returns a sheet with a single empty interval.
func New(opts Options) State {
	return State{
		opts:      opts,
		intervals: []interval.Interval{interval.Empty()},
	}
}

// FromIntervals seeds a sheet with existing intervals. An empty list gives
// the same state as New. The result is computed when AutoRecalculate is set.
func FromIntervals(opts Options, intervals []interval.Interval) State {
	if len(intervals) == 0 {
		return New(opts)
	}
	s := State{opts: opts, intervals: append([]interval.Interval(nil), intervals...)}
	return s.recalc()
}

// FromResult seeds a sheet with intervals and the result of an earlier
// Calculate, so front ends that rebuild the sheet on every request keep
// showing the last total until the next Calculate. With AutoRecalculate
// the result is recomputed and res is ignored.
func FromResult(opts Options, intervals []interval.Interval, res interval.Result) State {
	s := FromIntervals(opts, intervals)
	if opts.AutoRecalculate {
		return s
	}
	s.result = res
	s.result.Incomplete = append([]int(nil), res.Incomplete...)
	s.calculated = true
	return s
}

// Options returns the options the sheet was built with.
func (s State) Options() Options {
	return s.opts
}

// Len returns the number of intervals.
func (s State) Len() int {
	return len(s.intervals)
}

// Intervals returns a copy of the intervals.
func (s State) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), s.intervals...)
}

// Interval returns the interval at index.
func (s State) Interval(index int) (interval.Interval, error) {
	if err := s.checkIndex(index); err != nil {
		return interval.Interval{}, err
	}
	return s.intervals[index], nil
}

// Result returns the last computed result. Before the first calculation it
// is the zero Result.
func (s State) Result() interval.Result {
	return s.result
}

// Calculated reports whether a result has been computed since the last reset.
func (s State) Calculated() bool {
	return s.calculated
}

// Summary returns the display values for the current result.
func (s State) Summary() summary.Summary {
	return summary.New(s.result, s.opts.TargetHours)
}

// SetField replaces one field of one interval.
func (s State) SetField(index int, field Field, value string) (State, error) {
	if err := s.checkIndex(index); err != nil {
		return s, err
	}
	iv, err := field.apply(s.intervals[index], value)
	if err != nil {
		return s, err
	}
	next := s.clone()
	next.intervals[index] = iv
	return next.recalc(), nil
}

// AddInterval appends an empty interval.
func (s State) AddInterval() State {
	next := s.clone()
	next.intervals = append(next.intervals, interval.Empty())
	return next.recalc()
}

// DeleteInterval removes the interval at index. Deleting the only interval
// leaves one empty interval behind.
func (s State) DeleteInterval(index int) (State, error) {
	if err := s.checkIndex(index); err != nil {
		return s, err
	}
	next := s.clone()
	next.intervals = append(next.intervals[:index], next.intervals[index+1:]...)
	if len(next.intervals) == 0 {
		next.intervals = []interval.Interval{interval.Empty()}
	}
	return next.recalc(), nil
}

// Reset drops every interval, the result and the error flag.
func (s State) Reset() State {
	return New(s.opts)
}

// Calculate recomputes the result from the current intervals.
func (s State) Calculate() State {
	next := s.clone()
	next.result = interval.Accumulate(next.intervals, next.opts.Clock, next.opts.Policy)
	next.calculated = true
	return next
}

// WithOptions returns the sheet with new options, recomputing when the
// sheet had already been calculated or AutoRecalculate is set.
func (s State) WithOptions(opts Options) State {
	next := s.clone()
	next.opts = opts
	if next.calculated {
		return next.Calculate()
	}
	return next.recalc()
}

func (s State) recalc() State {
	if !s.opts.AutoRecalculate {
		return s
	}
	return s.Calculate()
}

func (s State) clone() State {
	next := s
	next.intervals = append([]interval.Interval(nil), s.intervals...)
	if s.result.Incomplete != nil {
		next.result.Incomplete = append([]int(nil), s.result.Incomplete...)
	}
	return next
}

func (s State) checkIndex(index int) error {
	if index < 0 || index >= len(s.intervals) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.intervals))
	}
	return nil
}
