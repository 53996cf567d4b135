package service

import (
	"context"
	"sync"
	"time"

	"go-booking-engine/core/clock"
	"go-booking-engine/core/errors"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/booking/dto"
	"go-booking-engine/modules/booking/entity"
	"go-booking-engine/modules/booking/repository"
	calentity "go-booking-engine/modules/calendar/entity"
	calservice "go-booking-engine/modules/calendar/service"
	svcentity "go-booking-engine/modules/service/entity"
	svcservice "go-booking-engine/modules/service/service"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	GetBookingSlots(ctx context.Context, serviceID uuid.UUID, query dto.SlotQuery) (*dto.BookingSlotsResponse, *errors.AppError)
	CreateBookingIntent(ctx context.Context, serviceID uuid.UUID, req *dto.CreateBookingIntentRequest) (*dto.CreateBookingIntentResponse, *errors.AppError)
	ConfirmBookingIntent(ctx context.Context, serviceID uuid.UUID, req *dto.ConfirmBookingIntentRequest) (*entity.Reservation, *errors.AppError)
	ReleaseBookingIntent(ctx context.Context, serviceID uuid.UUID, timestamp int64) *errors.AppError
	ExpirePendingBefore(ctx context.Context, before int64) ([]entity.Reservation, error)
}

type BookingService struct {
	serviceSvc      svcservice.ServiceServiceInterface
	freeBusySvc     calservice.FreeBusyServiceInterface
	reservationRepo repository.ReservationRepositoryInterface
	selector        *RoundRobinSelector
	generator       *SlotGenerator
	clock           clock.Clock
}

func NewBookingService(
	serviceSvc svcservice.ServiceServiceInterface,
	freeBusySvc calservice.FreeBusyServiceInterface,
	reservationRepo repository.ReservationRepositoryInterface,
	selector *RoundRobinSelector,
	clk clock.Clock,
) *BookingService {
	return &BookingService{
		serviceSvc:      serviceSvc,
		freeBusySvc:     freeBusySvc,
		reservationRepo: reservationRepo,
		selector:        selector,
		generator:       NewSlotGenerator(),
		clock:           clk,
	}
}

// GetBookingSlots computes the bookable slots of a service for one calendar
// day: validate the query, aggregate each participant's free time, then step
// the generator through the window.
func (s *BookingService) GetBookingSlots(ctx context.Context, serviceID uuid.UUID, query dto.SlotQuery) (*dto.BookingSlotsResponse, *errors.AppError) {
	vq, appErr := ValidateSlotQuery(query)
	if appErr != nil {
		return nil, appErr
	}

	service, appErr := s.serviceSvc.GetService(ctx, serviceID)
	if appErr != nil {
		return nil, appErr
	}

	hosts := s.collectFreeIntervals(ctx, service.Participants, vq.Window.Interval())

	slots := s.generator.Generate(hosts, SlotGeneratorOptions{
		Window:   vq.Window,
		Interval: vq.Interval,
		Duration: vq.Duration,
		Closest:  service.ClosestBookingTime,
		Furthest: service.FurthestBookingTime,
		NowTS:    clock.NowMillis(s.clock),
	})

	logger.Info("BookingService:GetBookingSlots",
		"service_id", serviceID, "date", query.Date, "slots", len(slots))

	return groupSlotsByDate(slots, vq.Location), nil
}

// collectFreeIntervals aggregates free time per participant. Computations
// are independent, so they run concurrently; indexing keeps the output
// order stable.
func (s *BookingService) collectFreeIntervals(ctx context.Context, participants []svcentity.Participant, window calentity.Interval) []HostFreeIntervals {
	hosts := make([]HostFreeIntervals, len(participants))

	var wg sync.WaitGroup
	for i, p := range participants {
		wg.Add(1)
		go func(i int, p svcentity.Participant) {
			defer wg.Done()
			hosts[i] = HostFreeIntervals{
				UserID:        p.UserID,
				FreeIntervals: s.freeBusySvc.FreeIntervals(ctx, p, window),
			}
		}(i, p)
	}
	wg.Wait()

	return hosts
}

// CreateBookingIntent claims one host for the timestamp. Eligibility is
// recomputed from live busy state rather than a cached slot list; on a lost
// claim race the selection is retried against the reduced set, bounded by
// the number of eligible hosts.
func (s *BookingService) CreateBookingIntent(ctx context.Context, serviceID uuid.UUID, req *dto.CreateBookingIntentRequest) (*dto.CreateBookingIntentResponse, *errors.AppError) {
	if !ValidSlotsInterval(req.Interval) {
		return nil, errors.NewAppError(errors.ErrInvalidInterval,
			"Invalid interval specified. It should be between 10 - 60 minutes inclusively and be specified as milliseconds.", nil)
	}
	if req.Duration <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be a positive number of milliseconds", nil)
	}

	service, appErr := s.serviceSvc.GetService(ctx, serviceID)
	if appErr != nil {
		return nil, appErr
	}

	nowTS := clock.NowMillis(s.clock)
	eligible := s.eligibleHostsAt(ctx, service, req.Timestamp, req.Duration, nowTS, req.HostUserIDs)

	// Hosts already holding an active reservation for this instant are not
	// selectable again; the unique claim below still guards the race window.
	active, err := s.reservationRepo.FindActiveByTimestamp(ctx, serviceID, req.Timestamp)
	if err != nil {
		logger.Error("BookingService:CreateBookingIntent:FindActive", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read reservations", err)
	}
	hadEligible := len(eligible) > 0
	for _, r := range active {
		eligible = removeHost(eligible, r.HostUserID)
	}
	if hadEligible && len(eligible) == 0 && len(req.HostUserIDs) > 0 {
		return nil, errors.NewAppError(errors.ErrSlotAlreadyReserved,
			"Slot is already reserved for the requested host(s)", nil)
	}

	for len(eligible) > 0 {
		host, err := s.selector.Select(ctx, service, eligible, nowTS)
		if err != nil {
			logger.Error("BookingService:CreateBookingIntent:Select", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to select host", err)
		}

		reservation := entity.NewReservation(serviceID, req.Timestamp, host)
		claimed, err := s.reservationRepo.InsertIfAbsent(ctx, reservation)
		if err != nil {
			logger.Error("BookingService:CreateBookingIntent:Claim", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to claim reservation", err)
		}
		if !claimed {
			// Lost the race for this host; retry against the reduced set
			logger.Info("BookingService:CreateBookingIntent:ClaimConflict",
				"service_id", serviceID, "timestamp", req.Timestamp, "host_user_id", host)
			eligible = removeHost(eligible, host)
			continue
		}

		logger.Info("BookingService:CreateBookingIntent:Success",
			"service_id", serviceID, "timestamp", req.Timestamp,
			"host_user_id", host, "reservation_ref", reservation.Ref)
		return &dto.CreateBookingIntentResponse{
			ReservationRef:      reservation.Ref,
			SelectedHost:        host,
			CreateEventForHosts: true,
		}, nil
	}

	return nil, errors.NewAppError(errors.ErrNoHostAvailable,
		"No host is available at the requested time", nil)
}

// eligibleHostsAt recomputes which participants are free for the full
// [timestamp, timestamp+duration) range right now, honoring the service's
// closest/furthest booking bounds.
func (s *BookingService) eligibleHostsAt(ctx context.Context, service *svcentity.Service, timestamp, duration, nowTS int64, restrictTo []uuid.UUID) []uuid.UUID {
	if timestamp < nowTS {
		return nil
	}
	if service.ClosestBookingTime != nil && timestamp < nowTS+*service.ClosestBookingTime {
		return nil
	}
	if service.FurthestBookingTime != nil && timestamp >= nowTS+*service.FurthestBookingTime {
		return nil
	}

	participants := service.Participants
	if len(restrictTo) > 0 {
		var filtered []svcentity.Participant
		for _, p := range participants {
			for _, id := range restrictTo {
				if p.UserID == id {
					filtered = append(filtered, p)
					break
				}
			}
		}
		participants = filtered
	}

	window := calentity.Interval{StartTS: timestamp, EndTS: timestamp + duration}
	var eligible []uuid.UUID
	for _, host := range s.collectFreeIntervals(ctx, participants, window) {
		if hostIsFree(host.FreeIntervals, timestamp, timestamp+duration) {
			eligible = append(eligible, host.UserID)
		}
	}
	sortHosts(eligible)
	return eligible
}

// ConfirmBookingIntent transitions the tuple's reservation from pending to
// confirmed once the calendar event exists. Confirming an already confirmed
// reservation is a no-op; confirming an expired one fails explicitly so the
// caller can restart the booking flow.
func (s *BookingService) ConfirmBookingIntent(ctx context.Context, serviceID uuid.UUID, req *dto.ConfirmBookingIntentRequest) (*entity.Reservation, *errors.AppError) {
	reservation, err := s.reservationRepo.FindByKey(ctx, serviceID, req.Timestamp, req.HostUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read reservation", err)
	}
	if reservation == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Reservation not found", nil)
	}

	switch reservation.Status {
	case entity.ReservationConfirmed:
		return reservation, nil
	case entity.ReservationExpired:
		return nil, errors.NewAppError(errors.ErrReservationExpired,
			"Reservation expired before confirmation; restart the booking flow", nil)
	case entity.ReservationReleased:
		return nil, errors.NewAppError(errors.ErrNotFound, "Reservation was released", nil)
	}

	moved, err := s.reservationRepo.TransitionByID(ctx, reservation.ID, entity.ReservationPending, entity.ReservationConfirmed)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to confirm reservation", err)
	}
	if !moved {
		// Raced with the expiry sweep or a concurrent confirm; re-read to decide
		current, err := s.reservationRepo.FindByKey(ctx, serviceID, req.Timestamp, req.HostUserID)
		if err != nil || current == nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to confirm reservation", err)
		}
		if current.Status == entity.ReservationConfirmed {
			return current, nil
		}
		return nil, errors.NewAppError(errors.ErrReservationExpired,
			"Reservation expired before confirmation; restart the booking flow", nil)
	}

	reservation.Status = entity.ReservationConfirmed
	reservation.UpdatedAt = time.Now()
	logger.Info("BookingService:ConfirmBookingIntent:Success",
		"service_id", serviceID, "timestamp", req.Timestamp, "host_user_id", req.HostUserID)
	return reservation, nil
}

// ReleaseBookingIntent frees the timestamp's pending reservations (for any
// host). Confirmed reservations stay untouched; the call is a no-op then.
func (s *BookingService) ReleaseBookingIntent(ctx context.Context, serviceID uuid.UUID, timestamp int64) *errors.AppError {
	released, err := s.reservationRepo.TransitionByTimestamp(ctx, serviceID, timestamp,
		entity.ReservationPending, entity.ReservationReleased)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to release reservation", err)
	}
	if released > 0 {
		logger.Info("BookingService:ReleaseBookingIntent:Success",
			"service_id", serviceID, "timestamp", timestamp, "released", released)
		return nil
	}

	active, err := s.reservationRepo.FindActiveByTimestamp(ctx, serviceID, timestamp)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to read reservations", err)
	}
	if len(active) > 0 {
		// Only confirmed reservations remain; releasing them is a no-op
		return nil
	}
	return errors.NewAppError(errors.ErrNotFound, "No reservation found for the given timestamp", nil)
}

// ExpirePendingBefore reclaims pending reservations whose slot time has
// passed without confirmation. Called by the periodic sweep worker.
func (s *BookingService) ExpirePendingBefore(ctx context.Context, before int64) ([]entity.Reservation, error) {
	reclaimed, err := s.reservationRepo.SweepExpired(ctx, before)
	if err != nil {
		logger.Error("BookingService:ExpirePendingBefore", err)
		return nil, err
	}
	if len(reclaimed) > 0 {
		logger.Info("BookingService:ExpirePendingBefore:Reclaimed",
			"count", len(reclaimed), "before", before)
	}
	return reclaimed, nil
}

func groupSlotsByDate(slots []entity.Slot, loc *time.Location) *dto.BookingSlotsResponse {
	resp := &dto.BookingSlotsResponse{Dates: []dto.DateSlots{}}
	for _, slot := range slots {
		date := time.UnixMilli(slot.Timestamp).In(loc).Format("2006-01-02")
		if n := len(resp.Dates); n == 0 || resp.Dates[n-1].Date != date {
			resp.Dates = append(resp.Dates, dto.DateSlots{Date: date})
		}
		last := &resp.Dates[len(resp.Dates)-1]
		last.Slots = append(last.Slots, dto.SlotDTO{
			Timestamp:     slot.Timestamp,
			EligibleHosts: slot.EligibleHosts,
		})
	}
	return resp
}

func removeHost(hosts []uuid.UUID, host uuid.UUID) []uuid.UUID {
	out := hosts[:0]
	for _, h := range hosts {
		if h != host {
			out = append(out, h)
		}
	}
	return out
}
