package router

import (
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	Controller *controller.CalendarController
}

func NewCalendarRouter(ctrl *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{Controller: ctrl}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.POST("/api/v1/users/:userId/calendars/:calendarId/events", r.Controller.CreateEvent)
}
