package entity

import "github.com/google/uuid"

// TimePlanKind is a closed variant for a participant's nominal availability
type TimePlanKind string

const (
	// TimePlanSchedule resolves availability from a working-hours schedule
	TimePlanSchedule TimePlanKind = "schedule"
	// TimePlanAlwaysAvailable treats the whole booking window as free
	TimePlanAlwaysAvailable TimePlanKind = "always_available"
	// TimePlanAlwaysBusy makes the participant never bookable
	TimePlanAlwaysBusy TimePlanKind = "always_busy"
)

func (k TimePlanKind) Valid() bool {
	switch k {
	case TimePlanSchedule, TimePlanAlwaysAvailable, TimePlanAlwaysBusy:
		return true
	}
	return false
}

// TimePlan is a participant's nominal availability source. ScheduleID is set
// only when Kind is TimePlanSchedule.
type TimePlan struct {
	Kind       TimePlanKind `json:"kind"`
	ScheduleID uuid.UUID    `json:"schedule_id,omitempty"`
}
