package schedule

import (
	"context"
	"time"
)

// AvailabilityService decides which staff can be booked for a date.
type AvailabilityService interface {
	// ResolveAvailableStaff returns the ids of staff working on the given
	// date, optionally narrowed to those assigned to serviceID. An empty
	// serviceID skips the service filter; an empty result is not an error.
	ResolveAvailableStaff(ctx context.Context, date time.Time, serviceID string) ([]string, error)
}

// UtilizationService computes scheduled-versus-worked time over a period.
type UtilizationService interface {
	CalculateUtilization(ctx context.Context, staffID string, startDate, endDate time.Time, includeBreaks bool) (UtilizationResult, error)
	// CalculateSalonUtilization runs the calculation for every active staff
	// member over the same range.
	CalculateSalonUtilization(ctx context.Context, startDate, endDate time.Time) ([]UtilizationResult, error)
}

// ManagementService covers schedule and break administration.
type ManagementService interface {
	UpsertWeeklySchedules(ctx context.Context, req UpsertWeeklySchedulesRequest) ([]WeeklySchedule, error)
	ListWeeklySchedules(ctx context.Context, staffID string) ([]WeeklySchedule, error)
	CreateBreak(ctx context.Context, req CreateBreakRequest) (Break, error)
	ListBreaks(ctx context.Context, staffID string) ([]Break, error)
}
