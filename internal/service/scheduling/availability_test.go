package scheduling

import (
	"context"
	"testing"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondaySchedule(staffID string) schedule.WeeklySchedule {
	return schedule.WeeklySchedule{
		StaffID:     staffID,
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
	}
}

func TestResolveAvailableStaff_OnlyScheduledStaff(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		{ID: "staff-1", IsActive: true, IsBookable: true},
		{ID: "staff-2", IsActive: true, IsBookable: true},
	}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, &fakeTimeOffRepo{})

	// 2024-03-11 is a Monday.
	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-1"}, available)
}

func TestResolveAvailableStaff_UnavailableDayExcluded(t *testing.T) {
	row := mondaySchedule("staff-1")
	row.IsAvailable = false
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{row}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{{ID: "staff-1", IsActive: true}}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, &fakeTimeOffRepo{})

	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestResolveAvailableStaff_ApprovedTimeOffExcludes(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
		mondaySchedule("staff-2"),
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		{ID: "staff-1", IsActive: true},
		{ID: "staff-2", IsActive: true},
	}}
	timeOffRepo := &fakeTimeOffRepo{requests: []timeoff.TimeOffRequest{
		{
			ID:        "timeoff-1",
			StaffID:   "staff-1",
			StartDate: mustDate(t, "2024-03-10"),
			EndDate:   mustDate(t, "2024-03-12"),
			Status:    timeoff.StatusApproved,
		},
	}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, timeOffRepo)

	// 2024-03-11 falls inside the approved range, boundaries included.
	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-2"}, available)

	// The next Monday is outside the range, so staff-1 comes back.
	available, err = svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-18"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-1", "staff-2"}, available)
}

func TestResolveAvailableStaff_PendingTimeOffDoesNotExclude(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{{ID: "staff-1", IsActive: true}}}
	timeOffRepo := &fakeTimeOffRepo{requests: []timeoff.TimeOffRequest{
		{
			ID:        "timeoff-1",
			StaffID:   "staff-1",
			StartDate: mustDate(t, "2024-03-11"),
			EndDate:   mustDate(t, "2024-03-11"),
			Status:    timeoff.StatusPending,
		},
	}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, timeOffRepo)

	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-1"}, available)
}

func TestResolveAvailableStaff_OverlappingApprovalsCollapse(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
		mondaySchedule("staff-2"),
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		{ID: "staff-1", IsActive: true},
		{ID: "staff-2", IsActive: true},
	}}
	timeOffRepo := &fakeTimeOffRepo{requests: []timeoff.TimeOffRequest{
		{
			ID:        "timeoff-1",
			StaffID:   "staff-1",
			StartDate: mustDate(t, "2024-03-10"),
			EndDate:   mustDate(t, "2024-03-12"),
			Status:    timeoff.StatusApproved,
		},
		{
			ID:        "timeoff-2",
			StaffID:   "staff-1",
			StartDate: mustDate(t, "2024-03-11"),
			EndDate:   mustDate(t, "2024-03-15"),
			Status:    timeoff.StatusApproved,
		},
	}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, timeOffRepo)

	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-2"}, available)
}

func TestResolveAvailableStaff_ServiceFilter(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
		mondaySchedule("staff-2"),
	}}
	staffRepo := &fakeStaffRepo{
		members: []staff.Staff{
			{ID: "staff-1", IsActive: true},
			{ID: "staff-2", IsActive: true},
		},
		assignments: map[string][]string{
			"service-haircut": {"staff-2"},
		},
	}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, &fakeTimeOffRepo{})

	available, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "service-haircut")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff-2"}, available)

	// Unknown service matches nobody; empty is a valid answer, not an error.
	available, err = svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "service-unknown")
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestResolveAvailableStaff_Idempotent(t *testing.T) {
	scheduleRepo := &fakeWeeklyScheduleRepo{rows: []schedule.WeeklySchedule{
		mondaySchedule("staff-1"),
		mondaySchedule("staff-2"),
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		{ID: "staff-1", IsActive: true},
		{ID: "staff-2", IsActive: true},
	}}
	svc := NewAvailabilityService(scheduleRepo, staffRepo, &fakeTimeOffRepo{})

	first, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	second, err := svc.ResolveAvailableStaff(context.Background(), mustDate(t, "2024-03-11"), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
