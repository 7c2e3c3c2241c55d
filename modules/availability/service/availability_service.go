package service

import (
	"context"
	"strings"
	"time"

	"gridmeet/core/errors"
	"gridmeet/core/logger"
	"gridmeet/core/queue"
	"gridmeet/modules/availability/dto"
	"gridmeet/modules/availability/entity"
	"gridmeet/modules/availability/repository"
	eventEntity "gridmeet/modules/event/entity"
	eventRepository "gridmeet/modules/event/repository"

	"github.com/google/uuid"
)

// AvailabilityService handles response and heatmap business logic
type AvailabilityService struct {
	repo      repository.ResponseRepositoryInterface
	eventRepo eventRepository.EventRepositoryInterface
	enqueuer  queue.Enqueuer
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	ListResponses(ctx context.Context, eventID string) (*dto.ListResponsesResponse, *errors.AppError)
	UpsertResponse(ctx context.Context, eventID string, req *dto.UpsertResponseRequest) (*dto.RespondentDTO, *errors.AppError)
	Heatmap(ctx context.Context, eventID string) (*dto.HeatmapResponse, *errors.AppError)
}

// NewAvailabilityService creates a new availability service. enqueuer may be
// nil in setups without a background worker; saves then simply skip the
// change fanout.
func NewAvailabilityService(
	repo repository.ResponseRepositoryInterface,
	eventRepo eventRepository.EventRepositoryInterface,
	enqueuer queue.Enqueuer,
) AvailabilityServiceInterface {
	return &AvailabilityService{
		repo:      repo,
		eventRepo: eventRepo,
		enqueuer:  enqueuer,
	}
}

func (s *AvailabilityService) ensureEvent(ctx context.Context, eventID string) (*eventEntity.Event, *errors.AppError) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

// ListResponses returns all saved responses in arrival order. Zero
// respondents is a valid, empty list.
func (s *AvailabilityService) ListResponses(ctx context.Context, eventID string) (*dto.ListResponsesResponse, *errors.AppError) {
	if _, appErr := s.ensureEvent(ctx, eventID); appErr != nil {
		return nil, appErr
	}

	responses, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list responses", err)
	}

	result := &dto.ListResponsesResponse{
		EventID:     eventID,
		Respondents: make([]dto.RespondentDTO, 0, len(responses)),
	}
	for i := range responses {
		result.Respondents = append(result.Respondents, dto.ToRespondentDTO(&responses[i]))
	}
	return result, nil
}

// UpsertResponse saves a respondent's vector, overwriting any previous save
// under the same name. Writes are strict: the vector must match the event's
// current grid exactly (reads stay lenient for stale snapshots).
func (s *AvailabilityService) UpsertResponse(ctx context.Context, eventID string, req *dto.UpsertResponseRequest) (*dto.RespondentDTO, *errors.AppError) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Display name is required", nil)
	}

	event, appErr := s.ensureEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	totalSlots := event.Grid().TotalSlots()
	if len(req.Slots) != totalSlots {
		return nil, errors.NewAppError(errors.ErrValidation, "Availability vector does not match the event grid", nil)
	}

	response := &entity.Response{
		ID:          uuid.New(),
		EventID:     eventID,
		DisplayName: name,
		Slots:       entity.Vector(req.Slots),
	}

	if err := s.repo.Upsert(ctx, response); err != nil {
		return nil, errors.NewAppError(errors.ErrSaveFailed, "Failed to save response", err)
	}

	// The fanout is advisory; a failed enqueue must not fail the save.
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueResponseChanged(ctx, eventID); err != nil {
			logger.Warn("AvailabilityService:UpsertResponse:Enqueue", "error", err, "event_id", eventID)
		}
	}

	logger.Info("AvailabilityService:UpsertResponse", "event_id", eventID, "display_name", name)
	saved := dto.ToRespondentDTO(response)
	saved.UpdatedAt = time.Now()
	return &saved, nil
}

// Heatmap recomputes the aggregate cells from the current respondent set.
// Derived, never cached here; the worker maintains the redis snapshot
// separately as a pure optimization.
func (s *AvailabilityService) Heatmap(ctx context.Context, eventID string) (*dto.HeatmapResponse, *errors.AppError) {
	event, appErr := s.ensureEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	responses, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list responses", err)
	}

	agg := NewAggregator(event.Grid().TotalSlots(), responses)
	return &dto.HeatmapResponse{
		EventID:          eventID,
		TotalSlots:       event.Grid().TotalSlots(),
		TotalRespondents: agg.TotalRespondents(),
		Cells:            agg.Cells(),
		GeneratedAt:      time.Now(),
	}, nil
}
