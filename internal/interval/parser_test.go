package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		clock    Clock
		expected Interval
	}{
		{
			name:     "24h",
			input:    "9:00-17:30",
			clock:    Clock24,
			expected: span12("9", "00", AM, "17", "30", AM),
		},
		{
			name:     "12h with suffixes",
			input:    "9:00am-5:30pm",
			clock:    Clock12,
			expected: span12("9", "00", AM, "5", "30", PM),
		},
		{
			name:     "12h suffix with space and upper case",
			input:    "12:15 PM - 1:00 PM",
			clock:    Clock12,
			expected: span12("12", "15", PM, "1", "00", PM),
		},
		{
			name:     "12h missing suffix defaults to AM",
			input:    "8:00-11:30",
			clock:    Clock12,
			expected: span12("8", "00", AM, "11", "30", AM),
		},
		{
			name:     "hours only leave minutes unset",
			input:    "9-17",
			clock:    Clock24,
			expected: span12("9", "", AM, "17", "", AM),
		},
		{
			name:     "empty out side",
			input:    "9:00-",
			clock:    Clock24,
			expected: span12("9", "00", AM, "", "", AM),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := ParseSpan(tt.input, tt.clock)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, iv)
		})
	}
}

func TestParseSpan_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		clock Clock
	}{
		{"no separator", "9:00", Clock24},
		{"too many separators", "9:00-10:00-11:00", Clock24},
		{"letters", "nine-five", Clock24},
		{"suffix on 24h clock", "9:00am-5:00pm", Clock24},
		{"bad suffix", "9:00xm-5:00pm", Clock12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpan(tt.input, tt.clock)
			assert.ErrorIs(t, err, ErrInvalidSpan)
		})
	}
}

func TestFormatSpan(t *testing.T) {
	assert.Equal(t, "9:00-17:30", FormatSpan(span24("9", "00", "17", "30"), Clock24))
	assert.Equal(t, "9:00am-5:30pm", FormatSpan(span12("9", "00", AM, "5", "30", PM), Clock12))
	assert.Equal(t, "9:_am-_:_am", FormatSpan(span12("9", "", AM, "", "", ""), Clock12))
}

func TestParseSpan_RoundTrip(t *testing.T) {
	iv, err := ParseSpan(FormatSpan(span12("7", "05", PM, "11", "45", PM), Clock12), Clock12)
	require.NoError(t, err)
	d, ok := iv.Delta(Clock12)
	require.True(t, ok)
	assert.InDelta(t, 4.0+40.0/60, d, 1e-9)
}
