package entity

import "errors"

// ErrSlotOutOfRange reports slot math called outside the grid. Interaction
// code treats it as a no-op; it is never surfaced to users.
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Grid describes the discretized slot layout of an event's window. Slots are
// addressed either by (day offset, slot offset within the day) or by a flat
// index i = dayOffset*SlotsPerDay() + slotOffset.
type Grid struct {
	Days         int
	SlotsPerHour int
	StartHour    int
	EndHour      int
}

func (g Grid) SlotsPerDay() int {
	return g.SlotsPerHour * (g.EndHour - g.StartHour)
}

func (g Grid) TotalSlots() int {
	return g.Days * g.SlotsPerDay()
}

// ToIndex maps (day offset, slot offset) to the flat slot index.
func (g Grid) ToIndex(dayOffset, slotOffset int) (int, error) {
	if dayOffset < 0 || dayOffset >= g.Days {
		return 0, ErrSlotOutOfRange
	}
	if slotOffset < 0 || slotOffset >= g.SlotsPerDay() {
		return 0, ErrSlotOutOfRange
	}
	return dayOffset*g.SlotsPerDay() + slotOffset, nil
}

// FromIndex maps a flat slot index back to (day offset, slot offset).
func (g Grid) FromIndex(i int) (dayOffset, slotOffset int, err error) {
	if i < 0 || i >= g.TotalSlots() {
		return 0, 0, ErrSlotOutOfRange
	}
	return i / g.SlotsPerDay(), i % g.SlotsPerDay(), nil
}

// IsHourBoundary reports whether a slot offset starts a new hour.
func (g Grid) IsHourBoundary(slotOffset int) bool {
	return slotOffset%g.SlotsPerHour == 0
}
