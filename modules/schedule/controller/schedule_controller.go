package controller

import (
	"go-booking-engine/core/controller"
	"go-booking-engine/core/errors"
	schedulesvc "go-booking-engine/modules/schedule/service"
	"go-booking-engine/modules/schedule/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ScheduleController struct {
	controller.BaseController
	ScheduleService schedulesvc.ScheduleServiceInterface
}

func NewScheduleController(svc schedulesvc.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

func (ctrl *ScheduleController) Create(c echo.Context) error {
	var req dto.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}
	if req.UserID == uuid.Nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "user_id is required", nil))
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}

	schedule, appErr := ctrl.ScheduleService.CreateSchedule(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, schedule, "Schedule created")
}

func (ctrl *ScheduleController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid schedule id", err))
	}

	schedule, appErr := ctrl.ScheduleService.GetSchedule(c.Request().Context(), id)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, schedule, "Schedule found")
}
