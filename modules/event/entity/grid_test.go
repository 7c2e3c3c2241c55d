package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGrid_Dimensions(t *testing.T) {
	g := Grid{Days: 3, SlotsPerHour: 4, StartHour: 9, EndHour: 21}

	require.Equal(t, 48, g.SlotsPerDay())
	require.Equal(t, 144, g.TotalSlots())
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := Grid{Days: 5, SlotsPerHour: 2, StartHour: 8, EndHour: 20}

	for day := 0; day < g.Days; day++ {
		for slot := 0; slot < g.SlotsPerDay(); slot++ {
			i, err := g.ToIndex(day, slot)
			require.NoError(t, err)

			d, s, err := g.FromIndex(i)
			require.NoError(t, err)
			require.Equal(t, day, d)
			require.Equal(t, slot, s)
		}
	}
}

func TestGrid_IndexOutOfRange(t *testing.T) {
	g := Grid{Days: 2, SlotsPerHour: 4, StartHour: 9, EndHour: 21}

	_, err := g.ToIndex(-1, 0)
	require.ErrorIs(t, err, ErrSlotOutOfRange)

	_, err = g.ToIndex(2, 0)
	require.ErrorIs(t, err, ErrSlotOutOfRange)

	_, err = g.ToIndex(0, g.SlotsPerDay())
	require.ErrorIs(t, err, ErrSlotOutOfRange)

	_, _, err = g.FromIndex(-1)
	require.ErrorIs(t, err, ErrSlotOutOfRange)

	_, _, err = g.FromIndex(g.TotalSlots())
	require.ErrorIs(t, err, ErrSlotOutOfRange)
}

func TestGrid_IsHourBoundary(t *testing.T) {
	g := Grid{Days: 1, SlotsPerHour: 4, StartHour: 9, EndHour: 21}

	require.True(t, g.IsHourBoundary(0))
	require.False(t, g.IsHourBoundary(1))
	require.False(t, g.IsHourBoundary(3))
	require.True(t, g.IsHourBoundary(4))
	require.True(t, g.IsHourBoundary(8))
}

func TestEvent_GridFromWindow(t *testing.T) {
	e := &Event{
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		SlotsPerHour: 4,
		DayStartHour: 9,
		DayEndHour:   21,
	}

	g := e.Grid()
	require.Equal(t, 3, g.Days)
	require.Equal(t, 144, g.TotalSlots())
}
