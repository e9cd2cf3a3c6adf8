package staff

import "time"

// Staff is a bookable salon worker profile.
type Staff struct {
	ID          string
	DisplayName string
	Title       *string
	IsActive    bool
	IsBookable  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceAssignment links a staff member to a service they can perform.
type ServiceAssignment struct {
	StaffID   string
	ServiceID string
}
