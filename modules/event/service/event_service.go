package service

import (
	"context"
	"strings"
	"time"

	"gridmeet/core/config"
	"gridmeet/core/errors"
	"gridmeet/core/logger"
	"gridmeet/core/utils"
	"gridmeet/modules/event/dto"
	"gridmeet/modules/event/entity"
	"gridmeet/modules/event/repository"
)

// EventService handles event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError)
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// CreateEvent validates the name and window, freezes the configured grid
// bounds onto the event and persists it. Validation failures never reach the
// repository.
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Event name is required", nil)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrValidation, "Invalid start date, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrValidation, "Invalid end date, expected YYYY-MM-DD", err)
	}

	cfg := config.Get()
	window, err := entity.NewTimeWindow(start, end, cfg.Grid.MaxSpanDays)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrValidation, "Invalid date range: "+err.Error(), err)
	}

	event := &entity.Event{
		ID:           utils.GenerateID(),
		Name:         name,
		Slug:         utils.ShareSlug(name),
		StartDate:    window.StartDate,
		EndDate:      window.EndDate,
		SlotsPerHour: cfg.Grid.SlotsPerHour,
		DayStartHour: cfg.Grid.DayStartHour,
		DayEndHour:   cfg.Grid.DayEndHour,
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	logger.Info("EventService:CreateEvent", "event_id", created.ID, "days", window.Days())
	return dto.ToEventResponse(created, cfg.Server.BaseURL), nil
}

// GetEventByID retrieves an event by ID. Unknown ids are a terminal NotFound.
func (s *EventService) GetEventByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	cfg := config.Get()
	return dto.ToEventResponse(event, cfg.Server.BaseURL), nil
}
