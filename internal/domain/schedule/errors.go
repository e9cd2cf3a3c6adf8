package schedule

import "errors"

var (
	ErrWeeklyScheduleNotFound = errors.New("weekly schedule not found")
	ErrBreakNotFound          = errors.New("break not found")

	// Validation errors
	ErrInvalidScheduleWindow = errors.New("schedule start time must be before end time")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
)
