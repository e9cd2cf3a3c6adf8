package postgresql

import (
	"context"
	"fmt"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type weeklyScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepositoryImpl{db: db}
}

// Upsert implements schedule.WeeklyScheduleRepository. Weekly schedule rows
// are never deleted, only overwritten per staff/weekday.
func (w *weeklyScheduleRepositoryImpl) Upsert(ctx context.Context, row schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO weekly_schedules (
			id, staff_id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		ON CONFLICT (staff_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		row.StaffID,
		row.DayOfWeek,
		row.StartTime,
		row.EndTime,
		row.IsAvailable,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to upsert weekly schedule: %w", err)
	}

	return row, nil
}

// ListByStaff implements schedule.WeeklyScheduleRepository.
func (w *weeklyScheduleRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, staff_id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		FROM weekly_schedules
		WHERE staff_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WeeklySchedule
	for rows.Next() {
		var row schedule.WeeklySchedule
		if err := rows.Scan(
			&row.ID,
			&row.StaffID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.IsAvailable,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule: %w", err)
		}
		schedules = append(schedules, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly schedules: %w", err)
	}

	return schedules, nil
}

// ListAvailableByDay implements schedule.WeeklyScheduleRepository.
func (w *weeklyScheduleRepositoryImpl) ListAvailableByDay(ctx context.Context, dayOfWeek int) ([]schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ws.id, ws.staff_id, ws.day_of_week, ws.start_time, ws.end_time, ws.is_available, ws.created_at, ws.updated_at
		FROM weekly_schedules ws
		JOIN staff_profiles sp ON sp.id = ws.staff_id
		WHERE ws.day_of_week = $1
		  AND ws.is_available = true
		  AND sp.is_active = true
		  AND sp.is_bookable = true
	`

	rows, err := q.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules by day: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WeeklySchedule
	for rows.Next() {
		var row schedule.WeeklySchedule
		if err := rows.Scan(
			&row.ID,
			&row.StaffID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.IsAvailable,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule: %w", err)
		}
		schedules = append(schedules, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedules by day: %w", err)
	}

	return schedules, nil
}
