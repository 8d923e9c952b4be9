package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Period is a calendar-aligned reporting period kind. It sizes the history
// window requested from the heartbeat source, which is distinct from the
// fixed backward-looking SummaryWindows.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ValidPeriods lists all accepted period kinds.
var ValidPeriods = []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

// NewPeriod parses a period kind from user input.
func NewPeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", invalidPeriodError(s)
	}
	return p, nil
}

// IsValid reports whether the period is one of the accepted kinds.
func (p Period) IsValid() bool {
	for _, v := range ValidPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// String returns the period keyword.
func (p Period) String() string {
	return string(p)
}

func invalidPeriodError(got string) error {
	names := make([]string, len(ValidPeriods))
	for i, v := range ValidPeriods {
		names[i] = string(v)
	}
	return fmt.Errorf("invalid period %q: must be one of %s", got, strings.Join(names, ", "))
}

// PeriodStart computes the instant the current period of the given kind began
// in the reference location: midnight today, midnight of the most recent
// Monday, the 1st of the month, the 1st of the quarter's first month, or
// January 1st. The location is an explicit parameter so reports can be
// evaluated against arbitrary reference timezones without global state.
func PeriodStart(p Period, loc *time.Location, now time.Time) (time.Time, error) {
	local := now.In(loc)
	y, m, d := local.Date()

	switch p {
	case PeriodDay:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	case PeriodWeek:
		// Week starts on Monday.
		daysBack := (int(local.Weekday()) + 6) % 7
		return time.Date(y, m, d-daysBack, 0, 0, 0, 0, loc), nil
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), nil
	case PeriodQuarter:
		quarterStart := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, quarterStart, 1, 0, 0, 0, 0, loc), nil
	case PeriodYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, invalidPeriodError(string(p))
}

// HoursSincePeriodStart returns the number of whole hours, rounded to the
// nearest integer, between the start of the current period and now. The
// result bounds how much heartbeat history must be requested so the engine
// sees the entire reporting period. Now is truncated to the minute first so
// repeated calls within the same minute agree.
func HoursSincePeriodStart(p Period, loc *time.Location, now time.Time) (int, error) {
	truncated := now.Truncate(time.Minute)
	start, err := PeriodStart(p, loc, truncated)
	if err != nil {
		return 0, err
	}
	return int(math.Round(truncated.Sub(start).Hours())), nil
}
