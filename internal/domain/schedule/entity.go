package schedule

import "time"

// WeeklySchedule is one recurring working window for a staff member on a
// single weekday. One row per staff per weekday; a missing row or
// IsAvailable=false both mean "not working that day".
type WeeklySchedule struct {
	ID          string
	StaffID     string
	DayOfWeek   int    // 0=Sunday, ..., 6=Saturday
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BreakType string

const (
	BreakTypeLunch BreakType = "lunch"
	BreakTypeRest  BreakType = "rest"
	BreakTypeOther BreakType = "other"
)

var BreakTypeValues = []string{
	string(BreakTypeLunch),
	string(BreakTypeRest),
	string(BreakTypeOther),
}

// Break is a non-working window inside a scheduled day. Recurring breaks
// carry a DayOfWeek and apply every matching weekday; one-off breaks carry a
// Date instead and apply once.
type Break struct {
	ID        string
	StaffID   string
	DayOfWeek *int       // nil for one-off breaks
	Date      *time.Time // nil for recurring breaks
	StartTime string     // HH:MM
	EndTime   string     // HH:MM
	BreakType BreakType
	CreatedAt time.Time
}

// Recurring reports whether the break applies every matching weekday.
func (b Break) Recurring() bool {
	return b.DayOfWeek != nil
}

// UtilizationResult is derived per request and never persisted.
type UtilizationResult struct {
	StaffID            string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	ScheduledMinutes   int
	WorkedMinutes      int
	UtilizationPercent float64
}
