package postgresql

import (
	"context"
	"fmt"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type breakRepositoryImpl struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) schedule.BreakRepository {
	return &breakRepositoryImpl{db: db}
}

// Create implements schedule.BreakRepository.
func (b *breakRepositoryImpl) Create(ctx context.Context, brk schedule.Break) (schedule.Break, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO breaks (
			id, staff_id, day_of_week, break_date, start_time, end_time, break_type, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		brk.StaffID,
		brk.DayOfWeek,
		brk.Date,
		brk.StartTime,
		brk.EndTime,
		string(brk.BreakType),
	).Scan(&brk.ID, &brk.CreatedAt)
	if err != nil {
		return schedule.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return brk, nil
}

// ListByStaff implements schedule.BreakRepository.
func (b *breakRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]schedule.Break, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, staff_id, day_of_week, break_date, start_time, end_time, break_type, created_at
		FROM breaks
		WHERE staff_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	var breaks []schedule.Break
	for rows.Next() {
		var brk schedule.Break
		var breakType string
		if err := rows.Scan(
			&brk.ID,
			&brk.StaffID,
			&brk.DayOfWeek,
			&brk.Date,
			&brk.StartTime,
			&brk.EndTime,
			&breakType,
			&brk.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		brk.BreakType = schedule.BreakType(breakType)
		breaks = append(breaks, brk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read breaks: %w", err)
	}

	return breaks, nil
}
