package service

import (
	"context"
	"fmt"
	"testing"

	"go-booking-engine/core/errors"
	"go-booking-engine/modules/calendar/entity"
	scheduledto "go-booking-engine/modules/schedule/dto"
	scheduleentity "go-booking-engine/modules/schedule/entity"
	svcentity "go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const hour int64 = 1000 * 60 * 60

type stubScheduleService struct {
	free []entity.Interval
	err  error
}

func (s *stubScheduleService) CreateSchedule(ctx context.Context, req *scheduledto.CreateScheduleRequest) (*scheduleentity.Schedule, *errors.AppError) {
	return nil, nil
}

func (s *stubScheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*scheduleentity.Schedule, *errors.AppError) {
	return nil, nil
}

func (s *stubScheduleService) FreeIntervals(ctx context.Context, scheduleID uuid.UUID, window entity.Interval) ([]entity.Interval, error) {
	return s.free, s.err
}

type stubEventRepo struct {
	busy []entity.Interval
	err  error

	gotFromTS int64
	gotToTS   int64
}

func (s *stubEventRepo) Create(ctx context.Context, event *entity.Event) error { return nil }

func (s *stubEventRepo) FindBusyIntervals(ctx context.Context, calendarIDs []uuid.UUID, fromTS, toTS int64) ([]entity.Interval, error) {
	s.gotFromTS, s.gotToTS = fromTS, toTS
	return s.busy, s.err
}

func (s *stubEventRepo) CountUpcomingServiceEvents(ctx context.Context, serviceID uuid.UUID, userIDs []uuid.UUID, fromTS int64) (map[uuid.UUID]int, error) {
	return nil, nil
}

func (s *stubEventRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func participant(kind svcentity.TimePlanKind) svcentity.Participant {
	return svcentity.Participant{
		UserID:          uuid.New(),
		Availability:    svcentity.TimePlan{Kind: kind, ScheduleID: uuid.New()},
		BusyCalendarIDs: []uuid.UUID{uuid.New()},
	}
}

func TestFreeBusyServiceFreeIntervals(t *testing.T) {
	window := entity.Interval{StartTS: 0, EndTS: 10 * hour}

	t.Run("always available minus busy events", func(t *testing.T) {
		events := &stubEventRepo{busy: []entity.Interval{{StartTS: 2 * hour, EndTS: 3 * hour}}}
		svc := NewFreeBusyService(&stubScheduleService{}, events)

		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanAlwaysAvailable), window)
		assert.Equal(t, []entity.Interval{{StartTS: 0, EndTS: 2 * hour}, {StartTS: 3 * hour, EndTS: 10 * hour}}, free)
	})

	t.Run("always busy yields nothing", func(t *testing.T) {
		svc := NewFreeBusyService(&stubScheduleService{}, &stubEventRepo{})
		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanAlwaysBusy), window)
		assert.Empty(t, free)
	})

	t.Run("schedule availability clips to schedule blocks", func(t *testing.T) {
		schedules := &stubScheduleService{free: []entity.Interval{{StartTS: 1 * hour, EndTS: 5 * hour}}}
		events := &stubEventRepo{busy: []entity.Interval{{StartTS: 4 * hour, EndTS: 6 * hour}}}
		svc := NewFreeBusyService(schedules, events)

		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanSchedule), window)
		assert.Equal(t, []entity.Interval{{StartTS: 1 * hour, EndTS: 4 * hour}}, free)
	})

	t.Run("schedule expansion failure makes the participant fully busy", func(t *testing.T) {
		schedules := &stubScheduleService{err: fmt.Errorf("schedule not found")}
		svc := NewFreeBusyService(schedules, &stubEventRepo{})

		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanSchedule), window)
		assert.Empty(t, free)
	})

	t.Run("busy lookup failure makes the participant fully busy", func(t *testing.T) {
		events := &stubEventRepo{err: fmt.Errorf("db down")}
		svc := NewFreeBusyService(&stubScheduleService{}, events)

		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanAlwaysAvailable), window)
		assert.Empty(t, free)
	})

	t.Run("buffers widen busy intervals", func(t *testing.T) {
		events := &stubEventRepo{busy: []entity.Interval{{StartTS: 4 * hour, EndTS: 5 * hour}}}
		svc := NewFreeBusyService(&stubScheduleService{}, events)

		p := participant(svcentity.TimePlanAlwaysAvailable)
		p.BufferBefore = hour
		p.BufferAfter = 2 * hour

		free := svc.FreeIntervals(context.Background(), p, window)
		assert.Equal(t, []entity.Interval{{StartTS: 0, EndTS: 3 * hour}, {StartTS: 7 * hour, EndTS: 10 * hour}}, free)
	})

	t.Run("busy lookup covers the buffer-widened window", func(t *testing.T) {
		events := &stubEventRepo{}
		svc := NewFreeBusyService(&stubScheduleService{}, events)

		p := participant(svcentity.TimePlanAlwaysAvailable)
		p.BufferBefore = hour
		p.BufferAfter = 2 * hour

		svc.FreeIntervals(context.Background(), p, window)
		assert.Equal(t, int64(0)-2*hour, events.gotFromTS)
		assert.Equal(t, 10*hour+hour, events.gotToTS)
	})

	t.Run("unknown time plan kind is fail closed", func(t *testing.T) {
		svc := NewFreeBusyService(&stubScheduleService{}, &stubEventRepo{})
		free := svc.FreeIntervals(context.Background(), participant(svcentity.TimePlanKind("mystery")), window)
		assert.Empty(t, free)
	})
}
