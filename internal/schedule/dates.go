package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates ("DD/MM/YYYY"), kept
// verbatim as the serialization boundary with the document store.
const DateLayout = "02/01/2006"

// ParseDate parses a "DD/MM/YYYY" string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as "DD/MM/YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsPastOrToday reports whether the "DD/MM/YYYY" date is on or before the
// calendar day of now (date-only comparison). Unparseable dates are treated
// as past, so the caller marks them unavailable defensively.
func IsPastOrToday(data string, now time.Time) bool {
	d, err := ParseDate(data)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.After(today)
}
