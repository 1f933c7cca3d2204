package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/stayhive/hostel-manager/internal/entity"
)

// Period selects the granularity of a current/previous comparison.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ErrInvalidPeriod is returned when an unsupported period token is supplied.
var ErrInvalidPeriod = errors.New("invalid period")

// ParsePeriod validates a caller-supplied period token.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// ComputeWindows derives the current reporting window and the window it is
// compared against, anchored at now. All windows are half-open [start, end).
//
//   - daily: current is [midnight, now), previous is the prior full day.
//   - weekly: current is [now-7d, now), previous is [now-14d, now-7d).
//   - monthly: current is [first of month, now), previous is the entire
//     preceding calendar month. The two windows differ in length while the
//     month is in progress; month-over-month comparisons conventionally
//     compare against whole months.
//
// Month arithmetic uses the calendar, so varying month lengths and the
// December to January rollover are handled correctly.
func ComputeWindows(p Period, now time.Time) (entity.PeriodPair, error) {
	switch p {
	case PeriodDaily:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return entity.PeriodPair{
			Current:  entity.TimeWindow{Start: midnight, End: now},
			Previous: entity.TimeWindow{Start: midnight.AddDate(0, 0, -1), End: midnight},
		}, nil
	case PeriodWeekly:
		weekAgo := now.AddDate(0, 0, -7)
		return entity.PeriodPair{
			Current:  entity.TimeWindow{Start: weekAgo, End: now},
			Previous: entity.TimeWindow{Start: now.AddDate(0, 0, -14), End: weekAgo},
		}, nil
	case PeriodMonthly:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return entity.PeriodPair{
			Current:  entity.TimeWindow{Start: firstOfMonth, End: now},
			Previous: entity.TimeWindow{Start: firstOfMonth.AddDate(0, -1, 0), End: firstOfMonth},
		}, nil
	}
	return entity.PeriodPair{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
}
