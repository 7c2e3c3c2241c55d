package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestRangePicker_EmptyToStartOnly(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	require.Equal(t, RangeEmpty, p.State())

	completed := p.ClickDay(day(10))
	require.False(t, completed)
	require.Equal(t, RangeStartOnly, p.State())

	start, ok := p.Start()
	require.True(t, ok)
	require.Equal(t, day(10), start)
}

func TestRangePicker_EarlierClickResetsStart(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(10))

	completed := p.ClickDay(day(5))
	require.False(t, completed)
	require.Equal(t, RangeStartOnly, p.State())

	start, _ := p.Start()
	require.Equal(t, day(5), start)
}

func TestRangePicker_CompletesRange(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(5))

	completed := p.ClickDay(day(9))
	require.True(t, completed)
	require.Equal(t, RangeFull, p.State())

	w, ok := p.Window()
	require.True(t, ok)
	require.Equal(t, day(5), w.StartDate)
	require.Equal(t, day(9), w.EndDate)
	require.Equal(t, 5, w.Days())
}

func TestRangePicker_SameDayRange(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(5))

	completed := p.ClickDay(day(5))
	require.True(t, completed)

	w, _ := p.Window()
	require.Equal(t, 1, w.Days())
}

func TestRangePicker_OverCapRestartsSelection(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(1))

	// 8 inclusive days exceeds the 7-day cap; the click becomes the new start.
	completed := p.ClickDay(day(8))
	require.False(t, completed)
	require.Equal(t, RangeStartOnly, p.State())

	start, _ := p.Start()
	require.Equal(t, day(8), start)
}

func TestRangePicker_NoCapWhenZero(t *testing.T) {
	p := NewRangePicker(day(1), 0)
	p.ClickDay(day(1))

	completed := p.ClickDay(day(28))
	require.True(t, completed)
}

func TestRangePicker_ClickOnFullStartsFresh(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(5))
	p.ClickDay(day(9))
	require.Equal(t, RangeFull, p.State())

	completed := p.ClickDay(day(20))
	require.False(t, completed)
	require.Equal(t, RangeStartOnly, p.State())

	start, _ := p.Start()
	require.Equal(t, day(20), start)

	_, ok := p.Window()
	require.False(t, ok)
}

func TestRangePicker_MonthNavigationIsOrthogonal(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(5))

	p.ChangeMonth(1)
	p.ChangeMonth(1)
	p.ChangeMonth(-1)

	require.Equal(t, RangeStartOnly, p.State())
	start, _ := p.Start()
	require.Equal(t, day(5), start)
	require.Equal(t, time.July, p.DisplayMonth().Month())
}

func TestRangePicker_LockedIgnoresClicks(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(day(5))
	p.ClickDay(day(9))
	p.Lock()

	completed := p.ClickDay(day(20))
	require.False(t, completed)
	require.Equal(t, RangeFull, p.State())

	w, ok := p.Window()
	require.True(t, ok)
	require.Equal(t, day(5), w.StartDate)
	require.Equal(t, day(9), w.EndDate)
}

func TestRangePicker_StripsTimeOfDay(t *testing.T) {
	p := NewRangePicker(day(1), 7)
	p.ClickDay(time.Date(2025, 6, 5, 14, 30, 0, 0, time.UTC))

	start, _ := p.Start()
	require.Equal(t, day(5), start)
}
