package performance

import (
	"context"
	"time"
)

type ReviewRepository interface {
	ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]Review, error)
}

type EarningRepository interface {
	ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]Earning, error)
}
