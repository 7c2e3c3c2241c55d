package entity

import "time"

// Event is a shareable availability poll over a fixed date range. The grid
// bounds are frozen at creation so a config change never re-shapes existing
// events.
type Event struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	SlotsPerHour int       `db:"slots_per_hour" json:"slots_per_hour"`
	DayStartHour int       `db:"day_start_hour" json:"day_start_hour"`
	DayEndHour   int       `db:"day_end_hour" json:"day_end_hour"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

func (e *Event) Window() TimeWindow {
	return TimeWindow{StartDate: Midnight(e.StartDate), EndDate: Midnight(e.EndDate)}
}

func (e *Event) Grid() Grid {
	return Grid{
		Days:         e.Window().Days(),
		SlotsPerHour: e.SlotsPerHour,
		StartHour:    e.DayStartHour,
		EndHour:      e.DayEndHour,
	}
}
