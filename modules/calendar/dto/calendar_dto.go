package dto

import "github.com/google/uuid"

// CreateEventRequest records a calendar event. The confirming client of a
// booking intent creates a busy event carrying the service id; that event
// blocks the host's availability and counts towards equal distribution.
type CreateEventRequest struct {
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	StartTS   int64      `json:"start_ts"`
	Duration  int64      `json:"duration"` // ms
	Busy      *bool      `json:"busy,omitempty"`
}
