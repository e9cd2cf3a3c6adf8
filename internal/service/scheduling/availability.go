package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/calendar"
)

type availabilityServiceImpl struct {
	weeklyScheduleRepo schedule.WeeklyScheduleRepository
	staffRepo          staff.Repository
	timeOffRepo        timeoff.Repository
}

func NewAvailabilityService(
	weeklyScheduleRepo schedule.WeeklyScheduleRepository,
	staffRepo staff.Repository,
	timeOffRepo timeoff.Repository,
) schedule.AvailabilityService {
	return &availabilityServiceImpl{
		weeklyScheduleRepo: weeklyScheduleRepo,
		staffRepo:          staffRepo,
		timeOffRepo:        timeOffRepo,
	}
}

// ResolveAvailableStaff implements schedule.AvailabilityService.
//
// Staff with no schedule row for the weekday are simply absent from the
// candidate set; that is "not working", not an error. Several overlapping
// approved time-off rows for one staff member collapse into a single
// exclusion.
func (s *availabilityServiceImpl) ResolveAvailableStaff(ctx context.Context, date time.Time, serviceID string) ([]string, error) {
	dayOfWeek := calendar.Weekday(date)

	rows, err := s.weeklyScheduleRepo.ListAvailableByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for day %d: %w", dayOfWeek, err)
	}

	candidates := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !seen[row.StaffID] {
			seen[row.StaffID] = true
			candidates = append(candidates, row.StaffID)
		}
	}

	if serviceID != "" {
		assigned, err := s.staffRepo.ListStaffIDsForService(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load staff for service %s: %w", serviceID, err)
		}
		assignedSet := make(map[string]bool, len(assigned))
		for _, staffID := range assigned {
			assignedSet[staffID] = true
		}

		filtered := candidates[:0]
		for _, staffID := range candidates {
			if assignedSet[staffID] {
				filtered = append(filtered, staffID)
			}
		}
		candidates = filtered
	}

	approved, err := s.timeOffRepo.ListApprovedInRange(ctx, "", date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved time off: %w", err)
	}
	excluded := make(map[string]bool, len(approved))
	for _, request := range approved {
		if calendar.WithinRange(date, request.StartDate, request.EndDate) {
			excluded[request.StaffID] = true
		}
	}

	available := make([]string, 0, len(candidates))
	for _, staffID := range candidates {
		if !excluded[staffID] {
			available = append(available, staffID)
		}
	}

	return available, nil
}
