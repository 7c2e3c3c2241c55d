package router

import (
	"gridmeet/core/middleware"
	"gridmeet/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes. Events are addressed by opaque share ids, so
// every route is public.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events", mw.RequestLogger())

	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("/:id", r.EventController.GetEvent)
}
