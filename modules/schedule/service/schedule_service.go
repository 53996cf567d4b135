package service

import (
	"context"
	"fmt"
	"time"

	"go-booking-engine/core/errors"
	"go-booking-engine/core/logger"
	calentity "go-booking-engine/modules/calendar/entity"
	"go-booking-engine/modules/schedule/dto"
	"go-booking-engine/modules/schedule/entity"
	"go-booking-engine/modules/schedule/repository"

	"github.com/google/uuid"
)

type ScheduleServiceInterface interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*entity.Schedule, *errors.AppError)
	GetSchedule(ctx context.Context, id uuid.UUID) (*entity.Schedule, *errors.AppError)
	FreeIntervals(ctx context.Context, scheduleID uuid.UUID, window calentity.Interval) ([]calentity.Interval, error)
}

type ScheduleService struct {
	repo repository.ScheduleRepositoryInterface
}

func NewScheduleService(repo repository.ScheduleRepositoryInterface) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*entity.Schedule, *errors.AppError) {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTimezone, fmt.Sprintf("Invalid timezone: %s. It should be a valid IANA TimeZone.", req.Timezone), err)
	}

	rules := req.Rules
	if len(rules) == 0 {
		rules = entity.DefaultRules()
	}
	for _, rule := range rules {
		if rule.Weekday < 0 || rule.Weekday > 6 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Schedule rule weekday must be between 0 and 6", nil)
		}
		start, err := parseWallClock(rule.Start)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Invalid rule start time: %s", rule.Start), err)
		}
		end, err := parseWallClock(rule.End)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Invalid rule end time: %s", rule.End), err)
		}
		if end <= start {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Schedule rule end must be after start", nil)
		}
	}

	schedule := &entity.Schedule{
		ID:       uuid.New(),
		UserID:   req.UserID,
		Timezone: req.Timezone,
		Rules:    rules,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		logger.Error("ScheduleService:CreateSchedule", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create schedule", err)
	}

	logger.Info("ScheduleService:CreateSchedule:Success", "schedule_id", schedule.ID, "user_id", schedule.UserID)
	return schedule, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*entity.Schedule, *errors.AppError) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get schedule", err)
	}
	if schedule == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Schedule not found", nil)
	}
	return schedule, nil
}

// FreeIntervals expands the schedule's recurring rules across the window in
// the schedule's timezone and returns the free intervals clipped to the
// window, normalized.
func (s *ScheduleService) FreeIntervals(ctx context.Context, scheduleID uuid.UUID, window calentity.Interval) ([]calentity.Interval, error) {
	schedule, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s not found", scheduleID)
	}

	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load schedule timezone %q: %w", schedule.Timezone, err)
	}

	var free []calentity.Interval

	// Walk calendar days, not fixed 24h steps, so DST transitions line up
	windowStart := time.UnixMilli(window.StartTS).In(loc)
	day := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, loc)
	for day.UnixMilli() < window.EndTS {
		for _, rule := range schedule.Rules {
			if int(day.Weekday()) != rule.Weekday {
				continue
			}
			startMin, err := parseWallClock(rule.Start)
			if err != nil {
				return nil, err
			}
			endMin, err := parseWallClock(rule.End)
			if err != nil {
				return nil, err
			}
			block := calentity.Interval{
				StartTS: day.Add(time.Duration(startMin) * time.Minute).UnixMilli(),
				EndTS:   day.Add(time.Duration(endMin) * time.Minute).UnixMilli(),
			}
			clipped := calentity.IntersectIntervals([]calentity.Interval{block}, []calentity.Interval{window})
			free = append(free, clipped...)
		}
		day = day.AddDate(0, 0, 1)
	}

	return calentity.MergeIntervals(free), nil
}

// parseWallClock parses "HH:MM" into minutes since midnight
func parseWallClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse wall clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
