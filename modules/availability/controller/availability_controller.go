package controller

import (
	"fmt"

	"gridmeet/core/cache"
	"gridmeet/core/controller"
	"gridmeet/core/errors"
	"gridmeet/core/logger"
	"gridmeet/modules/availability/dto"
	"gridmeet/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// AvailabilityController handles response and heatmap HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
	Cache               cache.Cache
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface, c cache.Cache) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
		Cache:               c,
	}
}

// ListResponses handles GET /events/:id/responses
// @Summary List responses
// @Description List every saved response for an event in arrival order
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ListResponsesResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/responses [get]
func (c *AvailabilityController) ListResponses(ctx echo.Context) error {
	result, appErr := c.AvailabilityService.ListResponses(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Responses retrieved successfully")
}

// UpsertResponse handles PUT /events/:id/responses
// @Summary Save a response
// @Description Save or overwrite a respondent's availability vector
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpsertResponseRequest true "Response"
// @Success 200 {object} dto.RespondentDTO
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/responses [put]
func (c *AvailabilityController) UpsertResponse(ctx echo.Context) error {
	var req dto.UpsertResponseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.UpsertResponse(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Response saved successfully")
}

// Heatmap handles GET /events/:id/heatmap
// @Summary Get the heatmap
// @Description Aggregate all responses into per-slot counts and name lists
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.HeatmapResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/heatmap [get]
func (c *AvailabilityController) Heatmap(ctx echo.Context) error {
	result, appErr := c.AvailabilityService.Heatmap(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Heatmap computed successfully")
}

// Subscribe handles GET /events/:id/subscribe as an SSE stream. One "change"
// message per response-change notification; the payload carries no state,
// clients react by re-fetching, which is idempotent under duplicates.
func (c *AvailabilityController) Subscribe(ctx echo.Context) error {
	eventID := ctx.Param("id")

	// Resolve NotFound before committing to the stream.
	if _, appErr := c.AvailabilityService.ListResponses(ctx.Request().Context(), eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(200)

	notify, cancel := c.Cache.SubscribeResponseChanges(ctx.Request().Context(), eventID)
	defer cancel()

	logger.Info("AvailabilityController:Subscribe", "event_id", eventID)

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case _, ok := <-notify:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprint(w, "event: change\ndata: {}\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
