package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind identifies a user action on the form.
type EventKind string

const (
	EventFieldChange EventKind = "field"
	EventAdd         EventKind = "add"
	EventDelete      EventKind = "delete"
	EventReset       EventKind = "reset"
	EventCalculate   EventKind = "calculate"
)

// Event is one user action. Index and Field are only meaningful for the
// kinds that target an interval.
type Event struct {
	Kind  EventKind
	Index int
	Field Field
	Value string
}

func (e Event) String() string {
	switch e.Kind {
	case EventFieldChange:
		return fmt.Sprintf("field[%d].%s=%q", e.Index, e.Field, e.Value)
	case EventDelete:
		return fmt.Sprintf("delete:%d", e.Index)
	}
	return string(e.Kind)
}

// Apply dispatches e to the matching transition.
func (s State) Apply(e Event) (State, error) {
	switch e.Kind {
	case EventFieldChange:
		return s.SetField(e.Index, e.Field, e.Value)
	case EventAdd:
		return s.AddInterval(), nil
	case EventDelete:
		return s.DeleteInterval(e.Index)
	case EventReset:
		return s.Reset(), nil
	case EventCalculate:
		return s.Calculate(), nil
	}
	return s, fmt.Errorf("unknown event %q", e.Kind)
}

// ParseAction reads a form button value: "add", "reset", "calculate" or
// "delete:<index>".
func ParseAction(action string) (Event, error) {
	action = strings.TrimSpace(action)
	switch EventKind(action) {
	case EventAdd, EventReset, EventCalculate:
		return Event{Kind: EventKind(action)}, nil
	}

	if rest, ok := strings.CutPrefix(action, string(EventDelete)+":"); ok {
		index, err := strconv.Atoi(rest)
		if err != nil {
			return Event{}, fmt.Errorf("invalid delete index %q: %w", rest, err)
		}
		return Event{Kind: EventDelete, Index: index}, nil
	}
	return Event{}, fmt.Errorf("unknown action %q", action)
}
