// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used at the persistence boundary.
const DateLayout = "2006-01-02"

// MonthPeriod is a calendar-month interval, from midnight of day 1 to the
// last instant of the last day, in a fixed location.
type MonthPeriod struct {
	Start time.Time
	End   time.Time
}

// MonthFor returns the period for the given year and month. Months outside
// 1-12 are normalized the way time.Date does (month 0 is December of the previous year).
func MonthFor(year int, month time.Month, loc *time.Location) MonthPeriod {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return MonthPeriod{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// MonthOf returns the period containing t, in t's location.
func MonthOf(t time.Time) MonthPeriod {
	return MonthFor(t.Year(), t.Month(), t.Location())
}

// TrailingMonths returns n consecutive month periods ending with the month of ref, oldest first.
func TrailingMonths(ref time.Time, n int) []MonthPeriod {
	if n <= 0 {
		return []MonthPeriod{}
	}

	periods := make([]MonthPeriod, 0, n)
	for i := n - 1; i >= 0; i-- {
		periods = append(periods, MonthFor(ref.Year(), ref.Month()-time.Month(i), ref.Location()))
	}
	return periods
}

// Contains reports whether the calendar day of date falls inside the period, both ends inclusive.
// The date's year, month and day are re-anchored in the period's location, so a date stored
// as UTC midnight is never shifted into a neighbouring month.
func (p MonthPeriod) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, p.Start.Location())
	return !day.Before(p.Start) && !day.After(p.End)
}

// Year returns the period's year.
func (p MonthPeriod) Year() int {
	return p.Start.Year()
}

// Month returns the period's month.
func (p MonthPeriod) Month() time.Month {
	return p.Start.Month()
}

// Key returns a sortable YYYY-MM identifier for the period.
func (p MonthPeriod) Key() string {
	return MonthKey(p.Start)
}

// FirstDay returns the first calendar day as a YYYY-MM-DD string.
func (p MonthPeriod) FirstDay() string {
	return DateString(p.Start)
}

// LastDay returns the last calendar day as a YYYY-MM-DD string.
func (p MonthPeriod) LastDay() string {
	return DateString(p.End)
}

// MonthKey returns the YYYY-MM key of the month containing the calendar day of t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// DateString formats the calendar day of t as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
