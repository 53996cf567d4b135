package entity

import (
	"time"

	"go-booking-engine/core/utils"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	// ReservationPending is claimed but not yet confirmed by the event store
	ReservationPending ReservationStatus = "pending"
	// ReservationConfirmed means the host's calendar event was created
	ReservationConfirmed ReservationStatus = "confirmed"
	// ReservationReleased was explicitly abandoned by the client
	ReservationReleased ReservationStatus = "released"
	// ReservationExpired was reclaimed by the periodic sweep
	ReservationExpired ReservationStatus = "expired"
)

// Reservation is a uniquely-claimed hold on a (service, timestamp, host)
// tuple. At most one pending or confirmed reservation may exist per tuple.
type Reservation struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	Ref        string            `db:"ref" json:"ref"`
	ServiceID  uuid.UUID         `db:"service_id" json:"service_id"`
	Timestamp  int64             `db:"timestamp" json:"timestamp"`
	HostUserID uuid.UUID         `db:"host_user_id" json:"host_user_id"`
	Status     ReservationStatus `db:"status" json:"status"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
}

// NewReservation builds a pending reservation for the tuple
func NewReservation(serviceID uuid.UUID, timestamp int64, hostUserID uuid.UUID) *Reservation {
	return &Reservation{
		ID:         uuid.New(),
		Ref:        utils.GenerateRef(),
		ServiceID:  serviceID,
		Timestamp:  timestamp,
		HostUserID: hostUserID,
		Status:     ReservationPending,
	}
}
