package repository

import (
	"context"
	"fmt"

	"go-booking-engine/core/database"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	FindBusyIntervals(ctx context.Context, calendarIDs []uuid.UUID, fromTS, toTS int64) ([]entity.Interval, error)
	CountUpcomingServiceEvents(ctx context.Context, serviceID uuid.UUID, userIDs []uuid.UUID, fromTS int64) (map[uuid.UUID]int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO calendar_events (id, calendar_id, user_id, service_id, start_ts, end_ts, busy)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		event.ID, event.CalendarID, event.UserID, event.ServiceID,
		event.StartTS, event.EndTS, event.Busy)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

// FindBusyIntervals returns the busy intervals of all events on the given
// calendars overlapping [fromTS, toTS)
func (r *EventRepository) FindBusyIntervals(ctx context.Context, calendarIDs []uuid.UUID, fromTS, toTS int64) ([]entity.Interval, error) {
	if len(calendarIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT start_ts, end_ts
		FROM calendar_events
		WHERE calendar_id = ANY($1)
		  AND busy = TRUE
		  AND start_ts < $3
		  AND end_ts > $2
		ORDER BY start_ts ASC
	`

	var intervals []entity.Interval
	err := r.DB.SelectContext(ctx, &intervals, query, pq.Array(calendarIDs), fromTS, toTS)
	if err != nil {
		logger.Error("EventRepository:FindBusyIntervals", err)
		return nil, fmt.Errorf("find busy intervals: %w", err)
	}
	return intervals, nil
}

// CountUpcomingServiceEvents counts, per user, the service's events starting
// at or after fromTS. Users without events map to zero.
func (r *EventRepository) CountUpcomingServiceEvents(ctx context.Context, serviceID uuid.UUID, userIDs []uuid.UUID, fromTS int64) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(userIDs))
	for _, id := range userIDs {
		counts[id] = 0
	}
	if len(userIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT user_id, COUNT(*) AS upcoming
		FROM calendar_events
		WHERE service_id = $1
		  AND user_id = ANY($2)
		  AND start_ts >= $3
		GROUP BY user_id
	`

	var rows []struct {
		UserID   uuid.UUID `db:"user_id"`
		Upcoming int       `db:"upcoming"`
	}
	err := r.DB.SelectContext(ctx, &rows, query, serviceID, pq.Array(userIDs), fromTS)
	if err != nil {
		logger.Error("EventRepository:CountUpcomingServiceEvents", err)
		return nil, fmt.Errorf("count upcoming service events: %w", err)
	}

	for _, row := range rows {
		counts[row.UserID] = row.Upcoming
	}
	return counts, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return fmt.Errorf("delete calendar event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("calendar event not found")
	}
	return nil
}
