package event

import (
	"gridmeet/core/database"
	"gridmeet/core/middleware"
	"gridmeet/modules/event/controller"
	"gridmeet/modules/event/repository"
	"gridmeet/modules/event/router"
	"gridmeet/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and returns the repository for use by
// other modules
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *repository.EventRepository {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)

	return repo
}
