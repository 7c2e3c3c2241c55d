package service

import (
	"time"

	"gridmeet/modules/event/entity"
)

// RangeState is the selection phase of a RangePicker.
type RangeState int

const (
	RangeEmpty RangeState = iota
	RangeStartOnly
	RangeFull
)

// RangePicker drives the creator's date-range selection. It is forward-only:
// there is no editing of a single endpoint, any click on a completed range
// starts a fresh selection. Month navigation is display state and never
// touches the selection.
type RangePicker struct {
	state        RangeState
	start        time.Time
	end          time.Time
	maxSpanDays  int
	displayMonth time.Time
	locked       bool
}

// NewRangePicker builds a picker showing the given month. maxSpanDays == 0
// disables the span cap.
func NewRangePicker(displayMonth time.Time, maxSpanDays int) *RangePicker {
	return &RangePicker{
		maxSpanDays:  maxSpanDays,
		displayMonth: time.Date(displayMonth.Year(), displayMonth.Month(), 1, 0, 0, 0, 0, displayMonth.Location()),
	}
}

// ClickDay feeds one day-clicked event into the state machine. It returns
// true when the click completed a range: the caller must then reallocate any
// slot-indexed buffer, since slot identity is positional and the old contents
// no longer align.
func (p *RangePicker) ClickDay(candidate time.Time) bool {
	if p.locked {
		return false
	}
	c := entity.Midnight(candidate)

	switch p.state {
	case RangeEmpty:
		p.state = RangeStartOnly
		p.start = c
	case RangeStartOnly:
		if c.Before(p.start) {
			p.start = c
			return false
		}
		if p.maxSpanDays > 0 && entity.DayCount(p.start, c) > p.maxSpanDays {
			p.start = c
			return false
		}
		p.state = RangeFull
		p.end = c
		return true
	case RangeFull:
		p.state = RangeStartOnly
		p.start = c
		p.end = time.Time{}
	}
	return false
}

// ChangeMonth moves the displayed month by delta months. Orthogonal to the
// selection state.
func (p *RangePicker) ChangeMonth(delta int) {
	p.displayMonth = p.displayMonth.AddDate(0, delta, 0)
}

func (p *RangePicker) DisplayMonth() time.Time {
	return p.displayMonth
}

// Lock freezes the picker. Ranges of events that already exist remotely are
// immutable; every subsequent click is a no-op.
func (p *RangePicker) Lock() {
	p.locked = true
}

func (p *RangePicker) Locked() bool {
	return p.locked
}

func (p *RangePicker) State() RangeState {
	return p.state
}

// Window returns the selected range; ok is false until the selection is
// complete.
func (p *RangePicker) Window() (entity.TimeWindow, bool) {
	if p.state != RangeFull {
		return entity.TimeWindow{}, false
	}
	return entity.TimeWindow{StartDate: p.start, EndDate: p.end}, true
}

// Start returns the pending start date; ok is false while the picker is
// empty.
func (p *RangePicker) Start() (time.Time, bool) {
	if p.state == RangeEmpty {
		return time.Time{}, false
	}
	return p.start, true
}
