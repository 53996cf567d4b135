package router

import (
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/service/controller"

	"github.com/labstack/echo/v4"
)

type ServiceRouter struct {
	Controller *controller.ServiceController
}

func NewServiceRouter(ctrl *controller.ServiceController) *ServiceRouter {
	return &ServiceRouter{Controller: ctrl}
}

func (r *ServiceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	g := e.Group("/api/v1/services")
	g.POST("", r.Controller.Create)
	g.GET("/:id", r.Controller.Get)
	g.POST("/:id/participants", r.Controller.AddParticipant)
	g.PUT("/:id/participants", r.Controller.AddParticipant)
	g.DELETE("/:id/participants/:userId", r.Controller.RemoveParticipant)
}
