package dto

import (
	"go-booking-engine/modules/schedule/entity"

	"github.com/google/uuid"
)

// CreateScheduleRequest creates a working-hours schedule for a user. Rules
// default to a Monday-Friday 09:00-17:00 week when omitted.
type CreateScheduleRequest struct {
	UserID   uuid.UUID             `json:"user_id"`
	Timezone string                `json:"timezone"`
	Rules    []entity.ScheduleRule `json:"rules,omitempty"`
}
