package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/performance"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// ListByStaffInRange implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, rating, created_at
		FROM reviews
		WHERE staff_id = $1
		  AND created_at::date BETWEEN $2 AND $3
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		if err := rows.Scan(&review.ID, &review.StaffID, &review.Rating, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}
