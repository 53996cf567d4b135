package controller

import (
	"go-booking-engine/core/controller"
	"go-booking-engine/core/errors"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/calendar/dto"
	"go-booking-engine/modules/calendar/entity"
	"go-booking-engine/modules/calendar/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	EventRepo repository.EventRepositoryInterface
}

func NewCalendarController(eventRepo repository.EventRepositoryInterface) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		EventRepo:      eventRepo,
	}
}

func (ctrl *CalendarController) CreateEvent(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid user id", err))
	}
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid calendar id", err))
	}

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}
	if req.Duration <= 0 {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "duration must be positive", nil))
	}

	busy := true
	if req.Busy != nil {
		busy = *req.Busy
	}

	event := &entity.Event{
		ID:         uuid.New(),
		CalendarID: calendarID,
		UserID:     userID,
		ServiceID:  req.ServiceID,
		StartTS:    req.StartTS,
		EndTS:      req.StartTS + req.Duration,
		Busy:       busy,
	}
	if err := ctrl.EventRepo.Create(c.Request().Context(), event); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err))
	}

	logger.Info("CalendarController:CreateEvent:Success",
		"event_id", event.ID, "user_id", userID, "calendar_id", calendarID)
	return ctrl.CreatedResponse(c, event, "Event created")
}
