package service

import (
	"context"

	"go-booking-engine/core/logger"
	"go-booking-engine/modules/calendar/entity"
	"go-booking-engine/modules/calendar/repository"
	schedulesvc "go-booking-engine/modules/schedule/service"
	svcentity "go-booking-engine/modules/service/entity"
)

type FreeBusyServiceInterface interface {
	FreeIntervals(ctx context.Context, p svcentity.Participant, window entity.Interval) []entity.Interval
}

// FreeBusyService combines a participant's nominal availability with their
// busy calendar events into a normalized free-interval set per booking window.
type FreeBusyService struct {
	scheduleSvc schedulesvc.ScheduleServiceInterface
	eventRepo   repository.EventRepositoryInterface
}

func NewFreeBusyService(scheduleSvc schedulesvc.ScheduleServiceInterface, eventRepo repository.EventRepositoryInterface) *FreeBusyService {
	return &FreeBusyService{
		scheduleSvc: scheduleSvc,
		eventRepo:   eventRepo,
	}
}

// FreeIntervals returns the participant's free intervals within the window:
// nominal availability minus buffer-widened busy intervals, merged and
// sorted. A failing collaborator makes the participant fully busy for the
// window (fail-closed) instead of failing the whole query.
func (s *FreeBusyService) FreeIntervals(ctx context.Context, p svcentity.Participant, window entity.Interval) []entity.Interval {
	base := s.baseAvailability(ctx, p, window)
	if len(base) == 0 {
		return nil
	}

	// Fetch busy events over the window widened by the buffers so events just
	// outside the window still shadow slots inside it once widened.
	busy, err := s.eventRepo.FindBusyIntervals(ctx, p.BusyCalendarIDs,
		window.StartTS-p.BufferAfter, window.EndTS+p.BufferBefore)
	if err != nil {
		logger.Warn("FreeBusyService:FreeIntervals:BusyLookupFailed",
			"user_id", p.UserID, "error", err)
		return nil
	}

	widened := make([]entity.Interval, 0, len(busy))
	for _, b := range busy {
		widened = append(widened, entity.Interval{
			StartTS: b.StartTS - p.BufferBefore,
			EndTS:   b.EndTS + p.BufferAfter,
		})
	}

	return entity.SubtractIntervals(base, widened)
}

func (s *FreeBusyService) baseAvailability(ctx context.Context, p svcentity.Participant, window entity.Interval) []entity.Interval {
	switch p.Availability.Kind {
	case svcentity.TimePlanAlwaysAvailable:
		return []entity.Interval{window}
	case svcentity.TimePlanAlwaysBusy:
		return nil
	case svcentity.TimePlanSchedule:
		free, err := s.scheduleSvc.FreeIntervals(ctx, p.Availability.ScheduleID, window)
		if err != nil {
			logger.Warn("FreeBusyService:baseAvailability:ScheduleExpansionFailed",
				"user_id", p.UserID, "schedule_id", p.Availability.ScheduleID, "error", err)
			return nil
		}
		return free
	default:
		logger.Warn("FreeBusyService:baseAvailability:UnknownTimePlan",
			"user_id", p.UserID, "kind", p.Availability.Kind)
		return nil
	}
}
