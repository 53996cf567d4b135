package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar event. Busy events block the owning user's
// availability; events carrying a service id are confirmed service bookings
// and count towards the equal-distribution load of their host.
type Event struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	CalendarID uuid.UUID  `db:"calendar_id" json:"calendar_id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	ServiceID  *uuid.UUID `db:"service_id" json:"service_id,omitempty"`
	StartTS    int64      `db:"start_ts" json:"start_ts"`
	EndTS      int64      `db:"end_ts" json:"end_ts"`
	Busy       bool       `db:"busy" json:"busy"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Interval returns the event's time range
func (e Event) Interval() Interval {
	return Interval{StartTS: e.StartTS, EndTS: e.EndTS}
}
