package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoundRobinAlgorithm is the fairness policy used to pick one host among
// several eligible for a slot. Immutable after service creation.
type RoundRobinAlgorithm string

const (
	// RoundRobinAvailability picks any currently available host; repeated
	// bookings cycle through hosts as each becomes busy
	RoundRobinAvailability RoundRobinAlgorithm = "availability"
	// RoundRobinEqualDistribution picks the host with the fewest upcoming
	// service bookings
	RoundRobinEqualDistribution RoundRobinAlgorithm = "equal_distribution"
)

func (a RoundRobinAlgorithm) Valid() bool {
	return a == RoundRobinAvailability || a == RoundRobinEqualDistribution
}

// Participant is a bookable host on a service
type Participant struct {
	ServiceID       uuid.UUID   `json:"service_id"`
	UserID          uuid.UUID   `json:"user_id"`
	Availability    TimePlan    `json:"availability"`
	BusyCalendarIDs []uuid.UUID `json:"busy_calendar_ids"`
	BufferBefore    int64       `json:"buffer_before"` // ms added before each busy interval
	BufferAfter     int64       `json:"buffer_after"`  // ms added after each busy interval
}

// Service is a bookable service exposing time slots to external clients
type Service struct {
	ID                  uuid.UUID           `json:"id"`
	Name                string              `json:"name"`
	Slug                string              `json:"slug"`
	Algorithm           RoundRobinAlgorithm `json:"round_robin_algorithm"`
	ClosestBookingTime  *int64              `json:"closest_booking_time,omitempty"`  // ms offset from now
	FurthestBookingTime *int64              `json:"furthest_booking_time,omitempty"` // ms offset from now
	Participants        []Participant       `json:"participants"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Participant returns the participant for the given user, or nil
func (s *Service) Participant(userID uuid.UUID) *Participant {
	for i := range s.Participants {
		if s.Participants[i].UserID == userID {
			return &s.Participants[i]
		}
	}
	return nil
}
