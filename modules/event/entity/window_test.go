package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	require.Equal(t, 1, DayCount(date(2025, 1, 1), date(2025, 1, 1)))
	require.Equal(t, 3, DayCount(date(2025, 1, 1), date(2025, 1, 3)))
	require.Equal(t, 7, DayCount(date(2025, 1, 1), date(2025, 1, 7)))
}

func TestDayCount_StripsTimeOfDay(t *testing.T) {
	start := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC)
	require.Equal(t, 2, DayCount(start, end))
}

func TestNewTimeWindow_Valid(t *testing.T) {
	w, err := NewTimeWindow(date(2025, 1, 1), date(2025, 1, 7), 7)
	require.NoError(t, err)
	require.Equal(t, 7, w.Days())
}

func TestNewTimeWindow_Inverted(t *testing.T) {
	_, err := NewTimeWindow(date(2025, 1, 5), date(2025, 1, 1), 7)
	require.ErrorIs(t, err, ErrWindowInverted)
}

func TestNewTimeWindow_TooLong(t *testing.T) {
	_, err := NewTimeWindow(date(2025, 1, 1), date(2025, 1, 8), 7)
	require.ErrorIs(t, err, ErrWindowTooLong)
}

func TestNewTimeWindow_UncappedWhenZero(t *testing.T) {
	w, err := NewTimeWindow(date(2025, 1, 1), date(2025, 3, 1), 0)
	require.NoError(t, err)
	require.Equal(t, 60, w.Days())
}

func TestNewTimeWindow_SingleDay(t *testing.T) {
	w, err := NewTimeWindow(date(2025, 1, 1), date(2025, 1, 1), 7)
	require.NoError(t, err)
	require.Equal(t, 1, w.Days())
}
