package schedule

import (
	"go-booking-engine/core/database"
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/schedule/controller"
	"go-booking-engine/modules/schedule/repository"
	"go-booking-engine/modules/schedule/router"
	"go-booking-engine/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.ScheduleService {
	repo := repository.NewScheduleRepository(db)
	svc := service.NewScheduleService(repo)
	ctrl := controller.NewScheduleController(svc)
	router.NewScheduleRouter(ctrl).Setup(e, mw)

	return svc
}
