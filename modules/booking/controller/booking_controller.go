package controller

import (
	"strconv"

	"go-booking-engine/core/controller"
	"go-booking-engine/core/errors"
	"go-booking-engine/modules/booking/dto"
	bkservice "go-booking-engine/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingController struct {
	controller.BaseController
	BookingService bkservice.BookingServiceInterface
}

func NewBookingController(svc bkservice.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

func (ctrl *BookingController) GetBookingSlots(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	var query dto.SlotQuery
	if err := c.Bind(&query); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid query parameters", err))
	}

	slots, appErr := ctrl.BookingService.GetBookingSlots(c.Request().Context(), serviceID, query)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, slots, "Booking slots computed")
}

func (ctrl *BookingController) CreateBookingIntent(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	var req dto.CreateBookingIntentRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}

	intent, appErr := ctrl.BookingService.CreateBookingIntent(c.Request().Context(), serviceID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, intent, "Booking intent created")
}

func (ctrl *BookingController) ConfirmBookingIntent(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	var req dto.ConfirmBookingIntentRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}

	reservation, appErr := ctrl.BookingService.ConfirmBookingIntent(c.Request().Context(), serviceID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, reservation, "Booking intent confirmed")
}

func (ctrl *BookingController) ReleaseBookingIntent(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	timestamp, err := strconv.ParseInt(c.QueryParam("timestamp"), 10, 64)
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid timestamp, expected milliseconds since epoch", err))
	}

	if appErr := ctrl.BookingService.ReleaseBookingIntent(c.Request().Context(), serviceID, timestamp); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "Booking intent released")
}
