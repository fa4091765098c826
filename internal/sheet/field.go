package sheet

import (
	"fmt"

	"github.com/xolan/punch/internal/interval"
)

// Field names one editable cell of an interval.
type Field string

const (
	InHour      Field = "inHour"
	InMinute    Field = "inMinute"
	InMeridiem  Field = "inAmPm"
	OutHour     Field = "outHour"
	OutMinute   Field = "outMinute"
	OutMeridiem Field = "outAmPm"
)

// Fields returns the editable fields in form order for the given clock.
// Meridiem fields only exist on the 12-hour clock.
func Fields(clock interval.Clock) []Field {
	if clock == interval.Clock12 {
		return []Field{InHour, InMinute, InMeridiem, OutHour, OutMinute, OutMeridiem}
	}
	return []Field{InHour, InMinute, OutHour, OutMinute}
}

// ParseField validates a field name.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case InHour, InMinute, InMeridiem, OutHour, OutMinute, OutMeridiem:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// IsMeridiem reports whether the field holds AM/PM rather than a number.
func (f Field) IsMeridiem() bool {
	return f == InMeridiem || f == OutMeridiem
}

// Label is the human-readable field name.
func (f Field) Label() string {
	switch f {
	case InHour:
		return "In Hour"
	case InMinute:
		return "In Minute"
	case InMeridiem:
		return "In AM/PM"
	case OutHour:
		return "Out Hour"
	case OutMinute:
		return "Out Minute"
	case OutMeridiem:
		return "Out AM/PM"
	}
	return string(f)
}

// Get reads the field from iv.
func (f Field) Get(iv interval.Interval) string {
	switch f {
	case InHour:
		return iv.InHour
	case InMinute:
		return iv.InMinute
	case InMeridiem:
		return string(iv.InMeridiem)
	case OutHour:
		return iv.OutHour
	case OutMinute:
		return iv.OutMinute
	case OutMeridiem:
		return string(iv.OutMeridiem)
	}
	return ""
}

func (f Field) apply(iv interval.Interval, value string) (interval.Interval, error) {
	switch f {
	case InHour:
		iv.InHour = value
	case InMinute:
		iv.InMinute = value
	case OutHour:
		iv.OutHour = value
	case OutMinute:
		iv.OutMinute = value
	case InMeridiem, OutMeridiem:
		m, err := interval.ParseMeridiem(value)
		if err != nil {
			return iv, err
		}
		if f == InMeridiem {
			iv.InMeridiem = m
		} else {
			iv.OutMeridiem = m
		}
	default:
		return iv, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return iv, nil
}
