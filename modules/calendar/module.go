package calendar

import (
	"go-booking-engine/core/database"
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/calendar/controller"
	"go-booking-engine/modules/calendar/repository"
	"go-booking-engine/modules/calendar/router"
	"go-booking-engine/modules/calendar/service"
	schedulesvc "go-booking-engine/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module and registers routes
func Init(e *echo.Echo, db database.IDatabase, scheduleSvc schedulesvc.ScheduleServiceInterface, mw *middleware.Middleware) (*repository.EventRepository, *service.FreeBusyService) {
	eventRepo := repository.NewEventRepository(db)
	freeBusySvc := service.NewFreeBusyService(scheduleSvc, eventRepo)
	ctrl := controller.NewCalendarController(eventRepo)
	router.NewCalendarRouter(ctrl).Setup(e, mw)

	return eventRepo, freeBusySvc
}
