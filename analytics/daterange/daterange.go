// Package daterange turns a period selector into a concrete inclusive
// [start, end] interval of calendar days.
package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// Period selects a relative or explicit date range
type Period string

const (
	PeriodAll     Period = "all"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodCustom  Period = "custom"
)

// ParsePeriod accepts the period names case-insensitively; empty means all
func ParsePeriod(v string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(v))); p {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodCustom:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q", v)
}

// Range is an inclusive interval of days. An empty Start means unbounded.
type Range struct {
	Start kernel.Date `json:"start,omitempty"`
	End   kernel.Date `json:"end"`
}

// Unbounded reports whether the range has no lower bound
func (r Range) Unbounded() bool {
	return r.Start.IsEmpty()
}

// Contains reports whether d is inside the range. An unbounded range
// contains every date, including dates after End.
func (r Range) Contains(d kernel.Date) bool {
	if r.Unbounded() {
		return true
	}
	return d.Between(r.Start, r.End)
}

// Label renders the range for report titles
func (r Range) Label() string {
	if r.Unbounded() {
		return "전체 기간"
	}
	return r.Start.String() + " ~ " + r.End.String()
}

// YearMonth is the month of the range end, used to look up goals
func (r Range) YearMonth() string {
	return r.End.YearMonth()
}

// ============================================================================
// Clock
// ============================================================================

// Clock supplies the current day
type Clock interface {
	Today() kernel.Date
}

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() kernel.Date {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return kernel.DateOf(now)
}

// FixedClock always returns the same day
type FixedClock kernel.Date

func (c FixedClock) Today() kernel.Date {
	return kernel.Date(c)
}

// ============================================================================
// Resolution
// ============================================================================

// Resolve converts a period into a range ending today. custom is used only
// for PeriodCustom and only when both of its ends are set.
func Resolve(p Period, custom Range, clock Clock) Range {
	today := clock.Today()

	switch p {
	case PeriodWeek:
		return Range{Start: today.AddDays(-7), End: today}
	case PeriodMonth:
		return Range{Start: today.AddMonths(-1), End: today}
	case PeriodQuarter:
		return Range{Start: today.AddDays(-90), End: today}
	case PeriodCustom:
		if !custom.Start.IsEmpty() && !custom.End.IsEmpty() {
			return custom
		}
	}
	return Range{End: today}
}
