package dto

import (
	"fmt"
	"time"

	"gridmeet/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new event. Dates are YYYY-MM-DD.
type CreateEventRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// ===================== Response DTOs =====================

// EventResponse for event details plus the derived grid dimensions.
type EventResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	SlotsPerHour int       `json:"slots_per_hour"`
	DayStartHour int       `json:"day_start_hour"`
	DayEndHour   int       `json:"day_end_hour"`
	SlotsPerDay  int       `json:"slots_per_day"`
	TotalSlots   int       `json:"total_slots"`
	ShareURL     string    `json:"share_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO. baseURL may be empty, the share path is
// still usable relative to the host.
func ToEventResponse(e *entity.Event, baseURL string) *EventResponse {
	grid := e.Grid()
	return &EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		StartDate:    e.StartDate.Format("2006-01-02"),
		EndDate:      e.EndDate.Format("2006-01-02"),
		Days:         grid.Days,
		SlotsPerHour: grid.SlotsPerHour,
		DayStartHour: grid.StartHour,
		DayEndHour:   grid.EndHour,
		SlotsPerDay:  grid.SlotsPerDay(),
		TotalSlots:   grid.TotalSlots(),
		ShareURL:     fmt.Sprintf("%s/e/%s-%s", baseURL, e.Slug, e.ID),
		CreatedAt:    e.CreatedAt,
	}
}
