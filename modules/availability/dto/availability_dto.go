package dto

import (
	"time"

	"gridmeet/modules/availability/entity"
)

// ===================== Request DTOs =====================

// UpsertResponseRequest saves one respondent's full vector. Keyed by display
// name within the event; a repeat save overwrites.
type UpsertResponseRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Slots       []bool `json:"slots" validate:"required"`
}

// ===================== Response DTOs =====================

// RespondentDTO for one saved response
type RespondentDTO struct {
	DisplayName string    `json:"display_name"`
	Slots       []bool    `json:"slots"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListResponsesResponse preserves arrival order
type ListResponsesResponse struct {
	EventID     string          `json:"event_id"`
	Respondents []RespondentDTO `json:"respondents"`
}

// HeatmapResponse for the aggregated grid
type HeatmapResponse struct {
	EventID          string                 `json:"event_id"`
	TotalSlots       int                    `json:"total_slots"`
	TotalRespondents int                    `json:"total_respondents"`
	Cells            []entity.AggregateCell `json:"cells"`
	GeneratedAt      time.Time              `json:"generated_at"`
}

// ===================== Mapper Functions =====================

func ToRespondentDTO(r *entity.Response) RespondentDTO {
	return RespondentDTO{
		DisplayName: r.DisplayName,
		Slots:       r.Slots,
		UpdatedAt:   r.UpdatedAt,
	}
}
