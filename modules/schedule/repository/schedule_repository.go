package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-booking-engine/core/database"
	"go-booking-engine/core/logger"
	"go-booking-engine/modules/schedule/entity"

	"github.com/google/uuid"
)

// ScheduleRepositoryInterface defines the repository contract
type ScheduleRepositoryInterface interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Schedule, error)
}

type ScheduleRepository struct {
	DB database.IDatabase
}

func NewScheduleRepository(db database.IDatabase) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

type scheduleRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Timezone  string    `db:"timezone"`
	Rules     []byte    `db:"rules"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r scheduleRow) toEntity() (*entity.Schedule, error) {
	var rules []entity.ScheduleRule
	if err := json.Unmarshal(r.Rules, &rules); err != nil {
		return nil, fmt.Errorf("decode schedule rules: %w", err)
	}
	return &entity.Schedule{
		ID:        r.ID,
		UserID:    r.UserID,
		Timezone:  r.Timezone,
		Rules:     rules,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	rules, err := json.Marshal(schedule.Rules)
	if err != nil {
		return fmt.Errorf("encode schedule rules: %w", err)
	}

	query := `
		INSERT INTO schedules (id, user_id, timezone, rules)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.DB.ExecContext(ctx, query, schedule.ID, schedule.UserID, schedule.Timezone, rules); err != nil {
		logger.Error("ScheduleRepository:Create", err)
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `
		SELECT id, user_id, timezone, rules, created_at, updated_at
		FROM schedules WHERE id = $1
	`

	var row scheduleRow
	err := r.DB.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetByID", err)
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}

	return row.toEntity()
}

func (r *ScheduleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Schedule, error) {
	query := `
		SELECT id, user_id, timezone, rules, created_at, updated_at
		FROM schedules
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	var rows []scheduleRow
	if err := r.DB.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("ScheduleRepository:GetByUserID", err)
		return nil, fmt.Errorf("get schedules by user: %w", err)
	}

	schedules := make([]entity.Schedule, 0, len(rows))
	for _, row := range rows {
		s, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, nil
}
