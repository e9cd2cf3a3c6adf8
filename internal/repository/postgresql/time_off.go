package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.Repository {
	return &timeOffRepositoryImpl{db: db}
}

// Create implements timeoff.Repository.
func (t *timeOffRepositoryImpl) Create(ctx context.Context, request timeoff.TimeOffRequest) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_off_requests (
			id, staff_id, start_date, end_date, reason, type, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.StaffID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.Type),
		string(request.Status),
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return request, nil
}

// GetByID implements timeoff.Repository.
func (t *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, staff_id, start_date, end_date, reason, type, status, reviewed_by, approved_at, created_at, updated_at
		FROM time_off_requests
		WHERE id = $1
	`

	request, err := scanTimeOffRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to get time off request: %w", err)
	}

	return request, nil
}

// List implements timeoff.Repository.
func (t *timeOffRepositoryImpl) List(ctx context.Context, filter timeoff.ListFilter) ([]timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, staff_id, start_date, end_date, reason, type, status, reviewed_by, approved_at, created_at, updated_at
		FROM time_off_requests
		WHERE ($1 = '' OR staff_id::text = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.StaffID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off requests: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOffRequest
	for rows.Next() {
		request, err := scanTimeOffRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time off request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time off requests: %w", err)
	}

	return requests, nil
}

// ListApprovedInRange implements timeoff.Repository. Overlap is inclusive on
// both date boundaries.
func (t *timeOffRepositoryImpl) ListApprovedInRange(ctx context.Context, staffID string, start, end time.Time) ([]timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, staff_id, start_date, end_date, reason, type, status, reviewed_by, approved_at, created_at, updated_at
		FROM time_off_requests
		WHERE status = 'approved'
		  AND ($1 = '' OR staff_id::text = $1)
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved time off: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOffRequest
	for rows.Next() {
		request, err := scanTimeOffRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approved time off: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approved time off: %w", err)
	}

	return requests, nil
}

// UpdateStatusIfPending implements timeoff.Repository. The WHERE clause on
// status makes the transition a compare-and-swap: of two concurrent reviews,
// exactly one matches the pending row.
func (t *timeOffRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id string, status timeoff.Status, reviewedBy string, approvedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_off_requests
		SET status = $2, reviewed_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), reviewedBy, approvedAt)
	if err != nil {
		return false, fmt.Errorf("failed to update time off status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanTimeOffRequest(row pgx.Row) (timeoff.TimeOffRequest, error) {
	var request timeoff.TimeOffRequest
	var requestType, status string
	err := row.Scan(
		&request.ID,
		&request.StaffID,
		&request.StartDate,
		&request.EndDate,
		&request.Reason,
		&requestType,
		&status,
		&request.ReviewedBy,
		&request.ApprovedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return timeoff.TimeOffRequest{}, err
	}
	request.Type = timeoff.Type(requestType)
	request.Status = timeoff.Status(status)
	return request, nil
}
