package router

import (
	"gridmeet/core/middleware"
	"gridmeet/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles response and heatmap routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers routes under the event share id.
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events/:id", mw.RequestLogger())

	eventRoutes.GET("/responses", r.AvailabilityController.ListResponses)
	eventRoutes.PUT("/responses", r.AvailabilityController.UpsertResponse)
	eventRoutes.GET("/heatmap", r.AvailabilityController.Heatmap)
	eventRoutes.GET("/subscribe", r.AvailabilityController.Subscribe)
}
