package entity

import "github.com/google/uuid"

// Slot is one bookable instant paired with the hosts able to take a booking
// of the requested duration starting there.
type Slot struct {
	Timestamp     int64       `json:"timestamp"`
	EligibleHosts []uuid.UUID `json:"eligible_hosts"`
}
