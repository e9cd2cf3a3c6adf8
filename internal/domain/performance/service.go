package performance

import (
	"context"
	"time"
)

type Service interface {
	GetPerformanceMetrics(ctx context.Context, staffID string, startDate, endDate time.Time) (Metrics, error)
}
