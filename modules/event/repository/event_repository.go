package repository

import (
	"context"
	"database/sql"

	"gridmeet/core/database"
	"gridmeet/core/logger"
	"gridmeet/modules/event/entity"
)

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (id, name, slug, start_date, end_date, slots_per_hour, day_start_hour, day_end_hour)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, slug, start_date, end_date, slots_per_hour, day_start_hour, day_end_hour,
		          created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.ID, event.Name, event.Slug, event.StartDate, event.EndDate,
		event.SlotsPerHour, event.DayStartHour, event.DayEndHour)

	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

// GetEventByID returns nil without error when the id is unknown.
func (r *EventRepository) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `
		SELECT id, name, slug, start_date, end_date, slots_per_hour, day_start_hour, day_end_hour,
		       created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}
