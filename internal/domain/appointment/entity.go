package appointment

import "time"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// DefaultDurationMinutes is assumed when an appointment has no recorded
// duration.
const DefaultDurationMinutes = 30

type Appointment struct {
	ID              string
	StaffID         string
	Date            time.Time
	DurationMinutes *int
	Status          Status
	CreatedAt       time.Time
}

// Minutes returns the recorded duration, falling back to the default unit.
func (a Appointment) Minutes() int {
	if a.DurationMinutes == nil {
		return DefaultDurationMinutes
	}
	return *a.DurationMinutes
}
