package kernel

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form. Lexicographic order of the
// string equals chronological order, so comparisons work on the raw value.
type Date string

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates a YYYY-MM-DD string
func ParseDate(v string) (Date, error) {
	if _, err := time.Parse(DateLayout, v); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", v, err)
	}
	return Date(v), nil
}

func (d Date) String() string { return string(d) }
func (d Date) IsEmpty() bool  { return d == "" }

func (d Date) Before(o Date) bool { return d < o }
func (d Date) After(o Date) bool  { return d > o }

// Between reports whether d lies in [start, end] inclusive
func (d Date) Between(start, end Date) bool {
	return d >= start && d <= end
}

// Time parses the date as midnight UTC; invalid dates yield the zero time
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the date by n days
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths shifts the date by n calendar months, normalizing overflow the
// same way time.AddDate does (Mar 31 minus one month is Mar 3).
func (d Date) AddMonths(n int) Date {
	return DateOf(d.Time().AddDate(0, n, 0))
}

// YearMonth returns the YYYY-MM prefix
func (d Date) YearMonth() string {
	if len(d) < 7 {
		return string(d)
	}
	return string(d[:7])
}
