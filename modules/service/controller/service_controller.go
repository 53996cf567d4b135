package controller

import (
	"go-booking-engine/core/controller"
	"go-booking-engine/core/errors"
	"go-booking-engine/modules/service/dto"
	svcservice "go-booking-engine/modules/service/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ServiceController struct {
	controller.BaseController
	ServiceService svcservice.ServiceServiceInterface
}

func NewServiceController(svc svcservice.ServiceServiceInterface) *ServiceController {
	return &ServiceController{
		BaseController: controller.NewBaseController(),
		ServiceService: svc,
	}
}

func (ctrl *ServiceController) Create(c echo.Context) error {
	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}

	service, appErr := ctrl.ServiceService.CreateService(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, service, "Service created")
}

func (ctrl *ServiceController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	service, appErr := ctrl.ServiceService.GetService(c.Request().Context(), id)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, service, "Service found")
}

func (ctrl *ServiceController) AddParticipant(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}

	var req dto.AddParticipantRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid request body", err))
	}

	participant, appErr := ctrl.ServiceService.AddParticipant(c.Request().Context(), serviceID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, participant, "Participant added")
}

func (ctrl *ServiceController) RemoveParticipant(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid service id", err))
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidInput, "Invalid user id", err))
	}

	if appErr := ctrl.ServiceService.RemoveParticipant(c.Request().Context(), serviceID, userID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "Participant removed")
}
