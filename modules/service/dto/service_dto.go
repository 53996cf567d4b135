package dto

import (
	"go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name                string                     `json:"name"`
	Algorithm           entity.RoundRobinAlgorithm `json:"round_robin_algorithm,omitempty"`
	ClosestBookingTime  *int64                     `json:"closest_booking_time,omitempty"`
	FurthestBookingTime *int64                     `json:"furthest_booking_time,omitempty"`
}

type AddParticipantRequest struct {
	UserID          uuid.UUID           `json:"user_id"`
	Availability    entity.TimePlanKind `json:"availability,omitempty"`
	ScheduleID      *uuid.UUID          `json:"schedule_id,omitempty"`
	BusyCalendarIDs []uuid.UUID         `json:"busy_calendar_ids,omitempty"`
	BufferBefore    int64               `json:"buffer_before,omitempty"`
	BufferAfter     int64               `json:"buffer_after,omitempty"`
}
