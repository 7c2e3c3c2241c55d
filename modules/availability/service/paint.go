package service

import "gridmeet/modules/availability/entity"

// Buffer is the current user's in-memory selection, one binary mark per slot.
// Out-of-range indices are silently ignored: pointer coordinates can
// transiently resolve outside the grid mid-drag and must not crash or wrap.
type Buffer struct {
	marks entity.Vector
}

func NewBuffer(totalSlots int) *Buffer {
	return &Buffer{marks: entity.NewVector(totalSlots)}
}

func (b *Buffer) Len() int {
	return len(b.marks)
}

func (b *Buffer) At(i int) bool {
	return b.marks.At(i)
}

func (b *Buffer) Set(i int, value bool) {
	if i < 0 || i >= len(b.marks) {
		return
	}
	b.marks[i] = value
}

func (b *Buffer) ToggleAt(i int) {
	if i < 0 || i >= len(b.marks) {
		return
	}
	b.marks[i] = !b.marks[i]
}

func (b *Buffer) SetRange(indices []int, value bool) {
	for _, i := range indices {
		b.Set(i, value)
	}
}

// Vector returns a snapshot copy for saving.
func (b *Buffer) Vector() entity.Vector {
	out := make(entity.Vector, len(b.marks))
	copy(out, b.marks)
	return out
}

// Reset discards the contents and reallocates for a new grid size. Slot
// identity is positional, so after a range change the old marks no longer
// align and are never remapped.
func (b *Buffer) Reset(totalSlots int) {
	b.marks = entity.NewVector(totalSlots)
}

// PaintSession is the drag-paint gesture state over a Buffer. The first
// pressed slot decides the mode for the whole gesture: painting when it was
// unmarked, erasing when it was marked. Every slot the pointer crosses while
// active gets the mode's value, so revisits are idempotent.
type PaintSession struct {
	buf    *Buffer
	active bool
	erase  bool
}

func NewPaintSession(buf *Buffer) *PaintSession {
	return &PaintSession{buf: buf}
}

// Begin starts a gesture at slot i.
func (s *PaintSession) Begin(i int) {
	s.active = true
	s.erase = s.buf.At(i)
	s.buf.Set(i, !s.erase)
}

// Enter applies the gesture to a newly crossed slot. Hovering without an
// active gesture never mutates; unchanged slots are not rewritten.
func (s *PaintSession) Enter(i int) {
	if !s.active {
		return
	}
	value := !s.erase
	if s.buf.At(i) != value {
		s.buf.Set(i, value)
	}
}

// End finishes the gesture (pointer release).
func (s *PaintSession) End() {
	s.active = false
}

// Leave finishes the gesture when the pointer exits the grid area. Without
// this, a pointer released outside and re-entering would keep painting with
// no button down.
func (s *PaintSession) Leave() {
	s.active = false
}

func (s *PaintSession) Active() bool {
	return s.active
}
