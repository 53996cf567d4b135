package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-booking-engine/core/database"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ServiceRepositoryInterface defines the repository contract
type ServiceRepositoryInterface interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	UpsertParticipant(ctx context.Context, p *entity.Participant) error
	RemoveParticipant(ctx context.Context, serviceID, userID uuid.UUID) (bool, error)
}

type ServiceRepository struct {
	DB database.IDatabase
}

func NewServiceRepository(db database.IDatabase) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

type serviceRow struct {
	ID                  uuid.UUID `db:"id"`
	Name                string    `db:"name"`
	Slug                string    `db:"slug"`
	Algorithm           string    `db:"round_robin_algorithm"`
	ClosestBookingTime  *int64    `db:"closest_booking_time"`
	FurthestBookingTime *int64    `db:"furthest_booking_time"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type participantRow struct {
	ServiceID       uuid.UUID      `db:"service_id"`
	UserID          uuid.UUID      `db:"user_id"`
	Availability    string         `db:"availability"`
	ScheduleID      *uuid.UUID     `db:"schedule_id"`
	BusyCalendarIDs pq.StringArray `db:"busy_calendar_ids"`
	BufferBefore    int64          `db:"buffer_before"`
	BufferAfter     int64          `db:"buffer_after"`
}

func (r participantRow) toEntity() (entity.Participant, error) {
	plan := entity.TimePlan{Kind: entity.TimePlanKind(r.Availability)}
	if plan.Kind == entity.TimePlanSchedule {
		if r.ScheduleID == nil {
			return entity.Participant{}, fmt.Errorf("participant %s has schedule availability without schedule_id", r.UserID)
		}
		plan.ScheduleID = *r.ScheduleID
	}

	calendarIDs := make([]uuid.UUID, 0, len(r.BusyCalendarIDs))
	for _, raw := range r.BusyCalendarIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return entity.Participant{}, fmt.Errorf("parse busy calendar id %q: %w", raw, err)
		}
		calendarIDs = append(calendarIDs, id)
	}

	return entity.Participant{
		ServiceID:       r.ServiceID,
		UserID:          r.UserID,
		Availability:    plan,
		BusyCalendarIDs: calendarIDs,
		BufferBefore:    r.BufferBefore,
		BufferAfter:     r.BufferAfter,
	}, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, name, slug, round_robin_algorithm, closest_booking_time, furthest_booking_time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		service.ID, service.Name, service.Slug, string(service.Algorithm),
		service.ClosestBookingTime, service.FurthestBookingTime)
	if err != nil {
		logger.Error("ServiceRepository:Create", err)
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `
		SELECT id, name, slug, round_robin_algorithm, closest_booking_time, furthest_booking_time, created_at, updated_at
		FROM services WHERE id = $1
	`

	var row serviceRow
	err := r.DB.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ServiceRepository:GetByID", err)
		return nil, fmt.Errorf("get service by id: %w", err)
	}

	participants, err := r.participants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.Service{
		ID:                  row.ID,
		Name:                row.Name,
		Slug:                row.Slug,
		Algorithm:           entity.RoundRobinAlgorithm(row.Algorithm),
		ClosestBookingTime:  row.ClosestBookingTime,
		FurthestBookingTime: row.FurthestBookingTime,
		Participants:        participants,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}, nil
}

func (r *ServiceRepository) participants(ctx context.Context, serviceID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT service_id, user_id, availability, schedule_id, busy_calendar_ids, buffer_before, buffer_after
		FROM service_participants
		WHERE service_id = $1
		ORDER BY user_id ASC
	`

	var rows []participantRow
	if err := r.DB.SelectContext(ctx, &rows, query, serviceID); err != nil {
		logger.Error("ServiceRepository:participants", err)
		return nil, fmt.Errorf("get service participants: %w", err)
	}

	participants := make([]entity.Participant, 0, len(rows))
	for _, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func (r *ServiceRepository) UpsertParticipant(ctx context.Context, p *entity.Participant) error {
	var scheduleID *uuid.UUID
	if p.Availability.Kind == entity.TimePlanSchedule {
		scheduleID = &p.Availability.ScheduleID
	}

	calendarIDs := make([]string, 0, len(p.BusyCalendarIDs))
	for _, id := range p.BusyCalendarIDs {
		calendarIDs = append(calendarIDs, id.String())
	}

	query := `
		INSERT INTO service_participants (service_id, user_id, availability, schedule_id, busy_calendar_ids, buffer_before, buffer_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (service_id, user_id) DO UPDATE
		SET availability = EXCLUDED.availability,
		    schedule_id = EXCLUDED.schedule_id,
		    busy_calendar_ids = EXCLUDED.busy_calendar_ids,
		    buffer_before = EXCLUDED.buffer_before,
		    buffer_after = EXCLUDED.buffer_after
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ServiceID, p.UserID, string(p.Availability.Kind), scheduleID,
		pq.Array(calendarIDs), p.BufferBefore, p.BufferAfter)
	if err != nil {
		logger.Error("ServiceRepository:UpsertParticipant", err)
		return fmt.Errorf("upsert service participant: %w", err)
	}
	return nil
}

func (r *ServiceRepository) RemoveParticipant(ctx context.Context, serviceID, userID uuid.UUID) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM service_participants WHERE service_id = $1 AND user_id = $2`,
		serviceID, userID)
	if err != nil {
		logger.Error("ServiceRepository:RemoveParticipant", err)
		return false, fmt.Errorf("remove service participant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove service participant: %w", err)
	}
	return affected > 0, nil
}
