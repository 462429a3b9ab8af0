// Package dates contains the deterministic calendar arithmetic behind
// recurring task series: frequency stepping, inclusive range expansion,
// whole-day deltas and noon normalization.
//
// Everything here is pure. Calendar dates are carried as time.Time values and
// compared on their date components only, so daylight-saving offsets and
// sub-day noise never produce off-by-one-day results.
package dates

import "time"

// Frequency identifies the step between consecutive occurrences of a series.
type Frequency string

const (
	Daily      Frequency = "daily"
	Every2Days Frequency = "every_2_days"
	Weekly     Frequency = "weekly"
	Biweekly   Frequency = "biweekly"
	Monthly    Frequency = "monthly"
)

// MaxOccurrences bounds series expansion. Whatever the range and frequency, a
// single request never produces more dates than this.
const MaxOccurrences = 50

// ParseFrequency maps a wire tag to a Frequency. Unknown tags map to Daily so
// that expansion stays total instead of failing a whole create request over a
// tag the server does not recognize.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case Daily, Every2Days, Weekly, Biweekly, Monthly:
		return Frequency(s)
	default:
		return Daily
	}
}

// Advance returns the next date in a series stepped by freq.
//
// Monthly uses AddDate(0, 1, 0), which normalizes out-of-range days forward:
// Jan 31 advances to Mar 2/3, not Feb 28. Series that must land on month-end
// should be authored as fixed-day cadences instead.
func Advance(t time.Time, freq Frequency) time.Time {
	switch freq {
	case Every2Days:
		return t.AddDate(0, 0, 2)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Biweekly:
		return t.AddDate(0, 0, 14)
	case Monthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// IterateInclusive expands the dates from start to end inclusive, stepping by
// freq and never yielding more than max dates. A start after end yields nil.
func IterateInclusive(start, end time.Time, freq Frequency, max int) []time.Time {
	if max > MaxOccurrences || max <= 0 {
		max = MaxOccurrences
	}

	var out []time.Time
	for d := start; !dateOnly(d).After(dateOnly(end)); d = Advance(d, freq) {
		out = append(out, d)
		if len(out) >= max {
			break
		}
	}
	return out
}

// DayDelta returns the signed whole-day difference b minus a, computed on
// date-only components. DayDelta(a, b) == -DayDelta(b, a).
func DayDelta(a, b time.Time) int {
	da := dateOnly(a)
	db := dateOnly(b)
	return int(db.Sub(da).Hours() / 24)
}

// ShiftDays moves a date by a signed number of calendar days.
func ShiftDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// NormalizeToNoon pins a date to 12:00:00 UTC. Persisting the canonical noon
// instant keeps a stored date on the same calendar day however it is later
// reparsed or offset.
func NormalizeToNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// FormatDate renders the calendar date component as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// dateOnly truncates to UTC midnight of the same calendar date. UTC has no
// DST transitions, so day subtraction on these values is exact.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
