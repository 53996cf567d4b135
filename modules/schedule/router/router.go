package router

import (
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	Controller *controller.ScheduleController
}

func NewScheduleRouter(ctrl *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{Controller: ctrl}
}

func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	g := e.Group("/api/v1/schedules")
	g.POST("", r.Controller.Create)
	g.GET("/:id", r.Controller.Get)
}
