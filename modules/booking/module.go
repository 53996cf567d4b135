package booking

import (
	"go-booking-engine/core/clock"
	"go-booking-engine/core/database"
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/booking/controller"
	"go-booking-engine/modules/booking/repository"
	"go-booking-engine/modules/booking/router"
	bkservice "go-booking-engine/modules/booking/service"
	calrepo "go-booking-engine/modules/calendar/repository"
	calservice "go-booking-engine/modules/calendar/service"
	svcservice "go-booking-engine/modules/service/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the booking module and registers routes. The booking
// engine composes the service catalog, the free-busy aggregator, and the
// reservation store.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	serviceSvc svcservice.ServiceServiceInterface,
	freeBusySvc calservice.FreeBusyServiceInterface,
	eventRepo calrepo.EventRepositoryInterface,
	clk clock.Clock,
) *bkservice.BookingService {
	reservationRepo := repository.NewReservationRepository(db)
	selector := bkservice.NewRoundRobinSelector(eventRepo)
	svc := bkservice.NewBookingService(serviceSvc, freeBusySvc, reservationRepo, selector, clk)
	ctrl := controller.NewBookingController(svc)
	router.NewBookingRouter(ctrl).Setup(e, mw)

	return svc
}
