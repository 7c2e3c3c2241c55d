package entity

import (
	"time"

	"github.com/google/uuid"
)

// Response is one respondent's saved availability for an event. Rows are
// unique per (event, display name, case-insensitive); a repeat save
// overwrites. Fetch order is arrival order (created_at).
type Response struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EventID     string    `db:"event_id" json:"event_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Slots       Vector    `db:"slots" json:"slots"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
