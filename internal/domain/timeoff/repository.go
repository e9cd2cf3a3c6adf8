package timeoff

import (
	"context"
	"time"
)

type ListFilter struct {
	StaffID string
	Status  string
}

type Repository interface {
	Create(ctx context.Context, request TimeOffRequest) (TimeOffRequest, error)
	GetByID(ctx context.Context, id string) (TimeOffRequest, error)
	List(ctx context.Context, filter ListFilter) ([]TimeOffRequest, error)
	// ListApprovedInRange returns approved requests whose [StartDate,
	// EndDate] overlaps [start, end], for one staff member or, with an empty
	// staffID, for all staff.
	ListApprovedInRange(ctx context.Context, staffID string, start, end time.Time) ([]TimeOffRequest, error)
	// UpdateStatusIfPending transitions a request out of pending as a
	// conditional update. It reports false when no pending row matched, so
	// two concurrent reviews cannot both win.
	UpdateStatusIfPending(ctx context.Context, id string, status Status, reviewedBy string, approvedAt time.Time) (bool, error)
}
