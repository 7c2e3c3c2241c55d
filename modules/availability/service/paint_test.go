package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_ToggleAndRange(t *testing.T) {
	b := NewBuffer(10)
	require.Equal(t, 10, b.Len())

	b.ToggleAt(3)
	require.True(t, b.At(3))
	b.ToggleAt(3)
	require.False(t, b.At(3))

	b.SetRange([]int{1, 2, 3}, true)
	require.True(t, b.At(1))
	require.True(t, b.At(2))
	require.True(t, b.At(3))
}

func TestBuffer_OutOfRangeIsNoOp(t *testing.T) {
	b := NewBuffer(4)

	b.Set(-1, true)
	b.Set(4, true)
	b.ToggleAt(99)
	b.SetRange([]int{-5, 10}, true)

	for i := 0; i < b.Len(); i++ {
		require.False(t, b.At(i))
	}
}

func TestBuffer_ResetDiscardsContents(t *testing.T) {
	b := NewBuffer(6)
	b.SetRange([]int{0, 1, 2, 3, 4, 5}, true)

	b.Reset(9)
	require.Equal(t, 9, b.Len())
	for i := 0; i < b.Len(); i++ {
		require.False(t, b.At(i))
	}
}

func TestBuffer_VectorIsACopy(t *testing.T) {
	b := NewBuffer(3)
	b.Set(0, true)

	v := b.Vector()
	b.Set(1, true)

	require.True(t, v.At(0))
	require.False(t, v.At(1))
}

func TestPaintSession_PaintMode(t *testing.T) {
	b := NewBuffer(10)
	s := NewPaintSession(b)

	// Starting on an unmarked slot paints.
	s.Begin(2)
	require.True(t, s.Active())
	require.True(t, b.At(2))

	s.Enter(3)
	s.Enter(4)
	s.End()

	require.True(t, b.At(3))
	require.True(t, b.At(4))
	require.False(t, s.Active())
}

func TestPaintSession_EraseMode(t *testing.T) {
	b := NewBuffer(10)
	b.SetRange([]int{2, 3, 4}, true)
	s := NewPaintSession(b)

	// Starting on a marked slot erases for the whole gesture.
	s.Begin(2)
	require.False(t, b.At(2))

	s.Enter(3)
	s.Enter(5) // already unmarked, stays unmarked
	s.End()

	require.False(t, b.At(3))
	require.True(t, b.At(4))
	require.False(t, b.At(5))
}

func TestPaintSession_RevisitsAreIdempotent(t *testing.T) {
	b := NewBuffer(10)
	s := NewPaintSession(b)

	s.Begin(1)
	s.Enter(2)
	s.Enter(1)
	s.Enter(2)
	s.Enter(1)
	s.End()

	require.True(t, b.At(1))
	require.True(t, b.At(2))
}

func TestPaintSession_HoverWithoutGestureNeverMutates(t *testing.T) {
	b := NewBuffer(10)
	s := NewPaintSession(b)

	s.Enter(0)
	s.Enter(1)

	require.False(t, b.At(0))
	require.False(t, b.At(1))
}

func TestPaintSession_LeaveEndsGesture(t *testing.T) {
	b := NewBuffer(10)
	s := NewPaintSession(b)

	s.Begin(0)
	s.Leave()
	require.False(t, s.Active())

	// Re-entering without a new press must not paint.
	s.Enter(5)
	require.False(t, b.At(5))
}

func TestPaintSession_OutOfRangeDuringDragIsSilent(t *testing.T) {
	b := NewBuffer(4)
	s := NewPaintSession(b)

	s.Begin(3)
	s.Enter(4) // pointer dragged past the last column
	s.Enter(-1)
	s.End()

	require.True(t, b.At(3))
	require.False(t, b.At(0))
}
