package schedule

import "context"

type WeeklyScheduleRepository interface {
	Upsert(ctx context.Context, row WeeklySchedule) (WeeklySchedule, error)
	ListByStaff(ctx context.Context, staffID string) ([]WeeklySchedule, error)
	// ListAvailableByDay returns every staff member's schedule row for one
	// weekday where IsAvailable is true.
	ListAvailableByDay(ctx context.Context, dayOfWeek int) ([]WeeklySchedule, error)
}

type BreakRepository interface {
	Create(ctx context.Context, brk Break) (Break, error)
	ListByStaff(ctx context.Context, staffID string) ([]Break, error)
}
