package appointment

import (
	"context"
	"time"
)

type Repository interface {
	// ListCompletedInRange returns completed appointments for one staff
	// member whose date falls within [start, end] inclusive.
	ListCompletedInRange(ctx context.Context, staffID string, start, end time.Time) ([]Appointment, error)
	// ListByStaffInRange returns appointments of every status for one staff
	// member within [start, end] inclusive.
	ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]Appointment, error)
}
