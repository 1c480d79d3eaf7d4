package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testTime = time.Date(2023, time.January, 2, 15, 4, 5, 6*int(time.Millisecond), time.UTC)

func TestFormatDefaultLayout(t *testing.T) {
	assert.Equal(t, "20230102150405006", Format(testTime, "YYYYMMDDHHmmssSSS"))
}

func TestFormatTokens(t *testing.T) {
	cases := []struct {
		layout string
		want   string
	}{
		{"YYYY", "2023"},
		{"YY", "23"},
		{"M", "1"},
		{"MM", "01"},
		{"D", "2"},
		{"DD", "02"},
		{"H", "15"},
		{"HH", "15"},
		{"h", "3"},
		{"hh", "03"},
		{"m", "4"},
		{"mm", "04"},
		{"s", "5"},
		{"ss", "05"},
		{"SSS", "006"},
		{"a", "pm"},
		{"A", "PM"},
		{"YYYY-MM-DD HH:mm", "2023-01-02 15:04"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(testTime, tc.layout), "layout %q", tc.layout)
	}
}

func TestFormatBracketLiterals(t *testing.T) {
	assert.Equal(t, "Day 2", Format(testTime, "[Day] D"))
	assert.Equal(t, "D2", Format(testTime, "[D]D"))
	// Unterminated bracket runs to the end of the layout.
	assert.Equal(t, "YYYY", Format(testTime, "[YYYY"))
}

func TestFormatPassthrough(t *testing.T) {
	assert.Equal(t, "2023_01_02", Format(testTime, "YYYY_MM_DD"))
}

func TestFormatMorningMeridiem(t *testing.T) {
	morning := time.Date(2023, time.January, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "12", Format(morning, "h"))
	assert.Equal(t, "am", Format(morning, "a"))
}
