package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go-booking-engine/core/database"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/booking/entity"

	"github.com/google/uuid"
)

// ReservationRepositoryInterface is the capability interface the engine
// depends on. InsertIfAbsent must be a true atomic claim (unique-constraint
// insert), not a read-then-write sequence.
type ReservationRepositoryInterface interface {
	// InsertIfAbsent claims the reservation's (service_id, timestamp,
	// host_user_id) tuple. Returns false when a pending or confirmed
	// reservation already holds it.
	InsertIfAbsent(ctx context.Context, reservation *entity.Reservation) (bool, error)
	// FindByKey returns the most recent reservation for the tuple, any status
	FindByKey(ctx context.Context, serviceID uuid.UUID, timestamp int64, hostUserID uuid.UUID) (*entity.Reservation, error)
	// FindActiveByTimestamp returns pending and confirmed reservations for
	// the service at the timestamp, across hosts
	FindActiveByTimestamp(ctx context.Context, serviceID uuid.UUID, timestamp int64) ([]entity.Reservation, error)
	// TransitionByID moves one reservation from one status to another;
	// returns false when the reservation was not in the expected status
	TransitionByID(ctx context.Context, id uuid.UUID, from, to entity.ReservationStatus) (bool, error)
	// TransitionByTimestamp moves every reservation of the service at the
	// timestamp from one status to another, returning how many moved
	TransitionByTimestamp(ctx context.Context, serviceID uuid.UUID, timestamp int64, from, to entity.ReservationStatus) (int64, error)
	// SweepExpired transitions all pending reservations with timestamp <=
	// before to expired and returns the reclaimed reservations
	SweepExpired(ctx context.Context, before int64) ([]entity.Reservation, error)
}

type ReservationRepository struct {
	DB database.IDatabase
}

func NewReservationRepository(db database.IDatabase) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

const reservationColumns = "id, ref, service_id, timestamp, host_user_id, status, created_at, updated_at"

func (r *ReservationRepository) InsertIfAbsent(ctx context.Context, reservation *entity.Reservation) (bool, error) {
	// The partial unique index on active reservations makes this claim
	// atomic under concurrent inserts for the same tuple.
	query := `
		INSERT INTO reservations (id, ref, service_id, timestamp, host_user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (service_id, timestamp, host_user_id)
		WHERE status IN ('pending', 'confirmed')
		DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query,
		reservation.ID, reservation.Ref, reservation.ServiceID,
		reservation.Timestamp, reservation.HostUserID, reservation.Status)
	if err != nil {
		logger.Error("ReservationRepository:InsertIfAbsent", err)
		return false, fmt.Errorf("insert reservation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert reservation: %w", err)
	}
	return affected > 0, nil
}

func (r *ReservationRepository) FindByKey(ctx context.Context, serviceID uuid.UUID, timestamp int64, hostUserID uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE service_id = $1 AND timestamp = $2 AND host_user_id = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var reservation entity.Reservation
	err := r.DB.GetContext(ctx, &reservation, query, serviceID, timestamp, hostUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReservationRepository:FindByKey", err)
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return &reservation, nil
}

func (r *ReservationRepository) FindActiveByTimestamp(ctx context.Context, serviceID uuid.UUID, timestamp int64) ([]entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE service_id = $1 AND timestamp = $2 AND status IN ('pending', 'confirmed')
		ORDER BY created_at ASC
	`

	var reservations []entity.Reservation
	if err := r.DB.SelectContext(ctx, &reservations, query, serviceID, timestamp); err != nil {
		logger.Error("ReservationRepository:FindActiveByTimestamp", err)
		return nil, fmt.Errorf("find active reservations: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) TransitionByID(ctx context.Context, id uuid.UUID, from, to entity.ReservationStatus) (bool, error) {
	query := `
		UPDATE reservations
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	result, err := r.DB.ExecContext(ctx, query, id, from, to)
	if err != nil {
		logger.Error("ReservationRepository:TransitionByID", err)
		return false, fmt.Errorf("transition reservation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition reservation: %w", err)
	}
	return affected > 0, nil
}

func (r *ReservationRepository) TransitionByTimestamp(ctx context.Context, serviceID uuid.UUID, timestamp int64, from, to entity.ReservationStatus) (int64, error) {
	query := `
		UPDATE reservations
		SET status = $4, updated_at = NOW()
		WHERE service_id = $1 AND timestamp = $2 AND status = $3
	`
	result, err := r.DB.ExecContext(ctx, query, serviceID, timestamp, from, to)
	if err != nil {
		logger.Error("ReservationRepository:TransitionByTimestamp", err)
		return 0, fmt.Errorf("transition reservations: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("transition reservations: %w", err)
	}
	return affected, nil
}

func (r *ReservationRepository) SweepExpired(ctx context.Context, before int64) ([]entity.Reservation, error) {
	query := `
		UPDATE reservations
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND timestamp <= $1
		RETURNING ` + reservationColumns

	var reclaimed []entity.Reservation
	if err := r.DB.SelectContext(ctx, &reclaimed, query, before); err != nil {
		logger.Error("ReservationRepository:SweepExpired", err)
		return nil, fmt.Errorf("sweep expired reservations: %w", err)
	}
	return reclaimed, nil
}
