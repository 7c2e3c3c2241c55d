package entity

import (
	"errors"
	"math"
	"time"
)

// TimeWindow errors.
var (
	ErrWindowInverted = errors.New("end date is before start date")
	ErrWindowTooLong  = errors.New("date range exceeds the maximum span")
)

// TimeWindow is the inclusive start/end date range an event spans. Dates are
// compared at day granularity; both bounds are stored stripped to midnight.
type TimeWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewTimeWindow validates and builds a window. maxSpanDays == 0 disables the
// span cap.
func NewTimeWindow(start, end time.Time, maxSpanDays int) (TimeWindow, error) {
	start = Midnight(start)
	end = Midnight(end)

	if end.Before(start) {
		return TimeWindow{}, ErrWindowInverted
	}
	if maxSpanDays > 0 && DayCount(start, end) > maxSpanDays {
		return TimeWindow{}, ErrWindowTooLong
	}

	return TimeWindow{StartDate: start, EndDate: end}, nil
}

// Days returns the inclusive day count of the window.
func (w TimeWindow) Days() int {
	return DayCount(w.StartDate, w.EndDate)
}

// Midnight strips the time of day, keeping the calendar date in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayCount returns the inclusive number of calendar days from start to end.
// DayCount(d, d) == 1. Rounding absorbs the 23/25-hour days around DST
// transitions.
func DayCount(start, end time.Time) int {
	start = Midnight(start)
	end = Midnight(end)
	return int(math.Round(end.Sub(start).Hours()/24)) + 1
}
