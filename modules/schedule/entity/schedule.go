package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleRule is one recurring working-hours block: a weekday plus local
// wall-clock start and end ("HH:MM", end exclusive).
type ScheduleRule struct {
	Weekday int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Schedule is a user's nominal working-hours rule set, expanded per booking
// window in the schedule's timezone.
type Schedule struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Timezone  string         `json:"timezone"`
	Rules     []ScheduleRule `json:"rules"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DefaultRules is the working week applied when a schedule is created
// without explicit rules: Monday to Friday, 09:00-17:00.
func DefaultRules() []ScheduleRule {
	rules := make([]ScheduleRule, 0, 5)
	for wd := 1; wd <= 5; wd++ {
		rules = append(rules, ScheduleRule{Weekday: wd, Start: "09:00", End: "17:00"})
	}
	return rules
}
