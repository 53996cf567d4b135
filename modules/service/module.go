package service

import (
	"go-booking-engine/core/cache"
	"go-booking-engine/core/database"
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/service/controller"
	"go-booking-engine/modules/service/repository"
	"go-booking-engine/modules/service/router"
	svcservice "go-booking-engine/modules/service/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the service module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) *svcservice.ServiceService {
	repo := repository.NewServiceRepository(db)
	svc := svcservice.NewServiceService(repo, c)
	ctrl := controller.NewServiceController(svc)
	router.NewServiceRouter(ctrl).Setup(e, mw)

	return svc
}
