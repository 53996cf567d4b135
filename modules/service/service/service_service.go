package service

import (
	"context"
	"fmt"

	"go-booking-engine/core/cache"
	"go-booking-engine/core/constants"
	"go-booking-engine/core/errors"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/service/dto"
	"go-booking-engine/modules/service/entity"
	"go-booking-engine/modules/service/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ServiceServiceInterface interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*entity.Service, *errors.AppError)
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, *errors.AppError)
	AddParticipant(ctx context.Context, serviceID uuid.UUID, req *dto.AddParticipantRequest) (*entity.Participant, *errors.AppError)
	RemoveParticipant(ctx context.Context, serviceID, userID uuid.UUID) *errors.AppError
}

type ServiceService struct {
	repo  repository.ServiceRepositoryInterface
	cache cache.Cache
}

func NewServiceService(repo repository.ServiceRepositoryInterface, c cache.Cache) *ServiceService {
	return &ServiceService{repo: repo, cache: c}
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("service:%s", id)
}

func (s *ServiceService) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*entity.Service, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = entity.RoundRobinAvailability
	}
	if !algorithm.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Unknown round robin algorithm: %s", algorithm), nil)
	}
	if req.ClosestBookingTime != nil && *req.ClosestBookingTime < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "closest_booking_time must not be negative", nil)
	}
	if req.FurthestBookingTime != nil && *req.FurthestBookingTime <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "furthest_booking_time must be positive", nil)
	}

	id := uuid.New()
	service := &entity.Service{
		ID:                  id,
		Name:                req.Name,
		Slug:                slug.Make(fmt.Sprintf("%s-%s", req.Name, id.String()[:8])),
		Algorithm:           algorithm,
		ClosestBookingTime:  req.ClosestBookingTime,
		FurthestBookingTime: req.FurthestBookingTime,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		logger.Error("ServiceService:CreateService", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create service", err)
	}

	logger.Info("ServiceService:CreateService:Success",
		"service_id", service.ID, "slug", service.Slug, "algorithm", service.Algorithm)
	return service, nil
}

func (s *ServiceService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, *errors.AppError) {
	var cached entity.Service
	if hit, err := s.cache.Get(ctx, cacheKey(id), &cached); err == nil && hit {
		return &cached, nil
	}

	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get service", err)
	}
	if service == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("Service with id %s was not found", id), nil)
	}

	if err := s.cache.Set(ctx, cacheKey(id), service, constants.ServiceCacheTTL); err != nil {
		logger.Warn("ServiceService:GetService:CacheSetFailed", "service_id", id, "error", err)
	}
	return service, nil
}

func (s *ServiceService) AddParticipant(ctx context.Context, serviceID uuid.UUID, req *dto.AddParticipantRequest) (*entity.Participant, *errors.AppError) {
	if _, appErr := s.GetService(ctx, serviceID); appErr != nil {
		return nil, appErr
	}
	if req.UserID == uuid.Nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "user_id is required", nil)
	}

	kind := req.Availability
	if kind == "" {
		kind = entity.TimePlanAlwaysAvailable
	}
	if !kind.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Unknown availability plan: %s", kind), nil)
	}

	plan := entity.TimePlan{Kind: kind}
	if kind == entity.TimePlanSchedule {
		if req.ScheduleID == nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "schedule_id is required for schedule availability", nil)
		}
		plan.ScheduleID = *req.ScheduleID
	}
	if req.BufferBefore < 0 || req.BufferAfter < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "buffers must not be negative", nil)
	}

	participant := &entity.Participant{
		ServiceID:       serviceID,
		UserID:          req.UserID,
		Availability:    plan,
		BusyCalendarIDs: req.BusyCalendarIDs,
		BufferBefore:    req.BufferBefore,
		BufferAfter:     req.BufferAfter,
	}
	if err := s.repo.UpsertParticipant(ctx, participant); err != nil {
		logger.Error("ServiceService:AddParticipant", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add participant", err)
	}

	s.invalidate(ctx, serviceID)
	logger.Info("ServiceService:AddParticipant:Success",
		"service_id", serviceID, "user_id", req.UserID, "availability", kind)
	return participant, nil
}

func (s *ServiceService) RemoveParticipant(ctx context.Context, serviceID, userID uuid.UUID) *errors.AppError {
	removed, err := s.repo.RemoveParticipant(ctx, serviceID, userID)
	if err != nil {
		logger.Error("ServiceService:RemoveParticipant", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	s.invalidate(ctx, serviceID)
	logger.Info("ServiceService:RemoveParticipant:Success", "service_id", serviceID, "user_id", userID)
	return nil
}

func (s *ServiceService) invalidate(ctx context.Context, serviceID uuid.UUID) {
	if err := s.cache.Delete(ctx, cacheKey(serviceID)); err != nil {
		logger.Warn("ServiceService:invalidate:CacheDeleteFailed", "service_id", serviceID, "error", err)
	}
}
