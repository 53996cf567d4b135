package router

import (
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	g := e.Group("/api/v1/services/:id")
	g.GET("/booking-slots", r.Controller.GetBookingSlots)
	g.POST("/booking-intents", r.Controller.CreateBookingIntent)
	g.POST("/booking-intents/confirm", r.Controller.ConfirmBookingIntent)
	g.DELETE("/booking-intents", r.Controller.ReleaseBookingIntent)
}
