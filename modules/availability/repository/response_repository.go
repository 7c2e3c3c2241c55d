package repository

import (
	"context"

	"gridmeet/core/database"
	"gridmeet/core/logger"
	"gridmeet/modules/availability/entity"
)

// ResponseRepository handles response database operations
type ResponseRepository struct {
	DB database.Database
}

// NewResponseRepository creates a new repository instance
func NewResponseRepository(db database.Database) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// ResponseRepositoryInterface defines the repository contract
type ResponseRepositoryInterface interface {
	Upsert(ctx context.Context, response *entity.Response) error
	ListByEventID(ctx context.Context, eventID string) ([]entity.Response, error)
}

// Upsert inserts or overwrites the response keyed by (event_id, display_name)
// case-insensitively. The created_at of the first save survives the
// overwrite, keeping the respondent's arrival position stable.
func (r *ResponseRepository) Upsert(ctx context.Context, response *entity.Response) error {
	query := `
		INSERT INTO responses (id, event_id, display_name, slots)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, LOWER(display_name))
		DO UPDATE SET slots = EXCLUDED.slots, updated_at = NOW()
	`

	err := r.DB.ExecContext(ctx, query,
		response.ID, response.EventID, response.DisplayName, response.Slots)
	if err != nil {
		logger.Error("ResponseRepository:Upsert", err)
		return err
	}

	return nil
}

// ListByEventID returns responses in arrival order. An empty list is valid,
// not an error.
func (r *ResponseRepository) ListByEventID(ctx context.Context, eventID string) ([]entity.Response, error) {
	query := `
		SELECT id, event_id, display_name, slots, created_at, updated_at
		FROM responses
		WHERE event_id = $1
		ORDER BY created_at
	`

	var responses []entity.Response
	err := r.DB.SelectContext(ctx, &responses, query, eventID)
	if err != nil {
		logger.Error("ResponseRepository:ListByEventID", err)
		return nil, err
	}

	return responses, nil
}
