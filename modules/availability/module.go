package availability

import (
	"gridmeet/core/cache"
	"gridmeet/core/database"
	"gridmeet/core/middleware"
	"gridmeet/core/queue"
	"gridmeet/modules/availability/controller"
	"gridmeet/modules/availability/repository"
	"gridmeet/modules/availability/router"
	"gridmeet/modules/availability/service"
	"gridmeet/modules/availability/worker"
	eventRepository "gridmeet/modules/event/repository"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the availability module: HTTP routes on e, background
// handlers on mux. The event repository is shared with the event module.
func Init(
	e *echo.Echo,
	mux *asynq.ServeMux,
	db database.Database,
	c cache.Cache,
	q *queue.Queue,
	eventRepo eventRepository.EventRepositoryInterface,
	mw *middleware.Middleware,
) {
	repo := repository.NewResponseRepository(db)
	svc := service.NewAvailabilityService(repo, eventRepo, q)
	ctrl := controller.NewAvailabilityController(svc, c)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	worker.NewResponseWorker(svc, c).Register(mux)
}
