package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/performance"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type earningRepositoryImpl struct {
	db *database.DB
}

func NewEarningRepository(db *database.DB) performance.EarningRepository {
	return &earningRepositoryImpl{db: db}
}

// ListByStaffInRange implements performance.EarningRepository.
func (e *earningRepositoryImpl) ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]performance.Earning, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, staff_id, amount, earning_type, earned_at
		FROM earnings
		WHERE staff_id = $1
		  AND earned_at::date BETWEEN $2 AND $3
		ORDER BY earned_at
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list earnings: %w", err)
	}
	defer rows.Close()

	var earnings []performance.Earning
	for rows.Next() {
		var earning performance.Earning
		var earningType string
		if err := rows.Scan(&earning.ID, &earning.StaffID, &earning.Amount, &earningType, &earning.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan earning: %w", err)
		}
		earning.Type = performance.EarningType(earningType)
		earnings = append(earnings, earning)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read earnings: %w", err)
	}

	return earnings, nil
}
