package worker

import (
	"context"

	"go-booking-engine/core/clock"
	"go-booking-engine/core/constants"
	"go-booking-engine/core/logger"
	bkservice "go-booking-engine/modules/booking/service"

	"github.com/hibiken/asynq"
)

// TaskReservationExpire reclaims pending reservations whose slot time passed
// without confirmation.
const TaskReservationExpire = "reservation:expire"

// ExpiryWorker runs the periodic reservation sweep over Redis-backed asynq.
type ExpiryWorker struct {
	server     *asynq.Server
	scheduler  *asynq.Scheduler
	bookingSvc bkservice.BookingServiceInterface
	clock      clock.Clock
}

func NewExpiryWorker(redisAddr, redisPassword string, redisDB int, bookingSvc bkservice.BookingServiceInterface, clk clock.Clock) *ExpiryWorker {
	opt := asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB}
	return &ExpiryWorker{
		server:     asynq.NewServer(opt, asynq.Config{Concurrency: 1}),
		scheduler:  asynq.NewScheduler(opt, nil),
		bookingSvc: bookingSvc,
		clock:      clk,
	}
}

// Start registers the sweep task and runs the worker loop in the background.
// Errors are logged rather than returned; the API stays up without the sweep.
func (w *ExpiryWorker) Start() {
	if _, err := w.scheduler.Register(constants.ReservationExpirySweepSpec, asynq.NewTask(TaskReservationExpire, nil)); err != nil {
		logger.Error("ExpiryWorker:Register", err)
		return
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReservationExpire, w.handleExpire)

	go func() {
		if err := w.server.Run(mux); err != nil {
			logger.Error("ExpiryWorker:Run", err)
		}
	}()
	go func() {
		if err := w.scheduler.Run(); err != nil {
			logger.Error("ExpiryWorker:Scheduler", err)
		}
	}()
}

func (w *ExpiryWorker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func (w *ExpiryWorker) handleExpire(ctx context.Context, _ *asynq.Task) error {
	_, err := w.bookingSvc.ExpirePendingBefore(ctx, clock.NowMillis(w.clock))
	return err
}
