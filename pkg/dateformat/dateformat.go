// Package dateformat renders timestamps according to the
// YYYYMMDDHHmmssSSS-style token dialect used by the persisted
// date_time_format setting.
package dateformat

import (
	"fmt"
	"strings"
	"time"
)

// token table, longest match first within each leading character.
var tokens = []struct {
	tok    string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"M", func(t time.Time) string { return fmt.Sprintf("%d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"D", func(t time.Time) string { return fmt.Sprintf("%d", t.Day()) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"H", func(t time.Time) string { return fmt.Sprintf("%d", t.Hour()) }},
	{"hh", func(t time.Time) string { return fmt.Sprintf("%02d", hour12(t)) }},
	{"h", func(t time.Time) string { return fmt.Sprintf("%d", hour12(t)) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"m", func(t time.Time) string { return fmt.Sprintf("%d", t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
	{"s", func(t time.Time) string { return fmt.Sprintf("%d", t.Second()) }},
	{"SSS", func(t time.Time) string { return fmt.Sprintf("%03d", t.Nanosecond()/1e6) }},
	{"A", func(t time.Time) string { return strings.ToUpper(meridiem(t)) }},
	{"a", meridiem},
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

func meridiem(t time.Time) string {
	if t.Hour() < 12 {
		return "am"
	}
	return "pm"
}

// Format renders t according to layout. Unrecognized characters are copied
// through verbatim; text wrapped in square brackets is always literal, so
// "[D]D" renders as "D" followed by the day of month.
func Format(t time.Time, layout string) string {
	var sb strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			end := strings.IndexByte(layout[i:], ']')
			if end < 0 {
				sb.WriteString(layout[i+1:])
				break
			}
			sb.WriteString(layout[i+1 : i+end])
			i += end + 1
			continue
		}
		matched := false
		for _, tk := range tokens {
			if strings.HasPrefix(layout[i:], tk.tok) {
				sb.WriteString(tk.render(t))
				i += len(tk.tok)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(layout[i])
			i++
		}
	}
	return sb.String()
}
