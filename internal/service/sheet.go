package service

import (
	"context"

	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/sheet"
	"github.com/xolan/punch/internal/summary"
)

// SheetService owns the current sheet state for one front end and
// dispatches user events to it.
type SheetService struct {
	state    sheet.State
	observer SheetObserver
}

// NewSheetService creates a SheetService holding a fresh sheet.
func NewSheetService(opts sheet.Options, observer SheetObserver) *SheetService {
	if observer == nil {
		observer = NoopSheetObserver{}
	}
	return &SheetService{
		state:    sheet.New(opts),
		observer: observer,
	}
}

// State returns the current snapshot.
func (s *SheetService) State() sheet.State {
	return s.state
}

// Summary returns the display values of the current snapshot.
func (s *SheetService) Summary() summary.Summary {
	return s.state.Summary()
}

// Dispatch applies e. On error the current state is left unchanged.
func (s *SheetService) Dispatch(ctx context.Context, e sheet.Event) (sheet.State, error) {
	next, err := s.state.Apply(e)
	if err == nil {
		s.state = next
	}
	res := s.state.Result()
	s.observer.ObserveSheet(ctx, SheetEvent{
		Name:       e.String(),
		Intervals:  s.state.Len(),
		TotalHours: res.TotalHours,
		IsError:    res.IsError,
		Err:        err,
	})
	return s.state, err
}

// SetField handles a field edit.
func (s *SheetService) SetField(ctx context.Context, index int, field sheet.Field, value string) (sheet.State, error) {
	return s.Dispatch(ctx, sheet.Event{Kind: sheet.EventFieldChange, Index: index, Field: field, Value: value})
}

// AddInterval appends an empty interval.
func (s *SheetService) AddInterval(ctx context.Context) sheet.State {
	st, _ := s.Dispatch(ctx, sheet.Event{Kind: sheet.EventAdd})
	return st
}

// DeleteInterval removes the interval at index.
func (s *SheetService) DeleteInterval(ctx context.Context, index int) (sheet.State, error) {
	return s.Dispatch(ctx, sheet.Event{Kind: sheet.EventDelete, Index: index})
}

// Reset restores a single empty interval.
func (s *SheetService) Reset(ctx context.Context) sheet.State {
	st, _ := s.Dispatch(ctx, sheet.Event{Kind: sheet.EventReset})
	return st
}

// Calculate recomputes the total.
func (s *SheetService) Calculate(ctx context.Context) sheet.State {
	st, _ := s.Dispatch(ctx, sheet.Event{Kind: sheet.EventCalculate})
	return st
}

// SetOptions swaps the sheet options, keeping the intervals.
func (s *SheetService) SetOptions(opts sheet.Options) sheet.State {
	s.state = s.state.WithOptions(opts)
	return s.state
}

// Restore replaces the intervals with a copy of intervals, keeping the
// options. Front ends that keep the form client side use it to rebuild the
// sheet before dispatching the next event. A non-nil last is the result of
// the previous Calculate and stays current in manual mode. No event is
// observed.
func (s *SheetService) Restore(intervals []interval.Interval, last *interval.Result) sheet.State {
	if last != nil {
		s.state = sheet.FromResult(s.state.Options(), intervals, *last)
		return s.state
	}
	s.state = sheet.FromIntervals(s.state.Options(), intervals)
	return s.state
}
