package dto

import "github.com/google/uuid"

// SlotQuery is the raw booking-slots query before validation
type SlotQuery struct {
	Date     string `query:"date" json:"date"`
	Timezone string `query:"timezone" json:"timezone,omitempty"`
	Interval int64  `query:"interval" json:"interval"` // ms
	Duration int64  `query:"duration" json:"duration"` // ms
}

type SlotDTO struct {
	Timestamp     int64       `json:"timestamp"`
	EligibleHosts []uuid.UUID `json:"eligible_hosts"`
}

// DateSlots groups a day's slots for presentation; slots stay chronological
// underneath.
type DateSlots struct {
	Date  string    `json:"date"`
	Slots []SlotDTO `json:"slots"`
}

type BookingSlotsResponse struct {
	Dates []DateSlots `json:"dates"`
}

// CreateBookingIntentRequest claims one host for a timestamp. When
// HostUserIDs is set, selection is restricted to those hosts.
type CreateBookingIntentRequest struct {
	Timestamp   int64       `json:"timestamp"`
	Duration    int64       `json:"duration"` // ms
	Interval    int64       `json:"interval"` // ms
	HostUserIDs []uuid.UUID `json:"host_user_ids,omitempty"`
}

type CreateBookingIntentResponse struct {
	ReservationRef      string    `json:"reservation_ref"`
	SelectedHost        uuid.UUID `json:"selected_host"`
	CreateEventForHosts bool      `json:"create_event_for_hosts"`
}

// ConfirmBookingIntentRequest marks the reservation confirmed after the
// calendar event was created for the host.
type ConfirmBookingIntentRequest struct {
	Timestamp  int64     `json:"timestamp"`
	HostUserID uuid.UUID `json:"host_user_id"`
}
