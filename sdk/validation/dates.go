package validation

import (
	"fmt"
	"time"
)

// ParseFlexibleDate tries to parse a date string using the formats the clients
// are known to send: plain calendar dates, the noon-suffixed form used to pin
// a date against timezone drift, and full RFC 3339 instants.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.DateOnly,         // YYYY-MM-DD
		"2006-01-02T15:04:05", // date with local time-of-day suffix
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatTimePtrToString renders an optional time as RFC 3339, or an empty
// string when nil.
func FormatTimePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
