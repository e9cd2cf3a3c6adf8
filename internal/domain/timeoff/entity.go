package timeoff

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition is allowed from s.
// Re-requesting time off after a decision requires a new record.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypePersonal Type = "personal"
	TypeOther    Type = "other"
)

var TypeValues = []string{
	string(TypeVacation),
	string(TypeSick),
	string(TypePersonal),
	string(TypeOther),
}

// TimeOffRequest is a date-range exclusion from a staff member's
// availability. Only approved requests suppress availability; pending and
// rejected ones are informational.
type TimeOffRequest struct {
	ID         string
	StaffID    string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Type       Type
	Status     Status
	ReviewedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
