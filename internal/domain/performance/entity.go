package performance

import "time"

// Review is a customer rating left for a staff member.
type Review struct {
	ID        string
	StaffID   string
	Rating    int // 1..5
	CreatedAt time.Time
}

type EarningType string

const (
	EarningTypeCommission EarningType = "commission"
	EarningTypeTip        EarningType = "tip"
)

// Earning is one paid-out amount credited to a staff member.
type Earning struct {
	ID       string
	StaffID  string
	Amount   float64
	Type     EarningType
	EarnedAt time.Time
}

// Metrics is a best-effort report built from three independent sources.
// Appointment counts, ratings and earnings are not reconciled against each
// other.
type Metrics struct {
	StaffID               string
	PeriodStart           time.Time
	PeriodEnd             time.Time
	TotalAppointments     int
	CompletedAppointments int
	CancelledAppointments int
	NoShowAppointments    int
	CompletionRate        float64
	AverageRating         float64
	TotalEarnings         float64
	CommissionEarnings    float64
	TipEarnings           float64
}
