package scheduling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/appointment"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/stretchr/testify/require"
)

type fakeWeeklyScheduleRepo struct {
	rows []schedule.WeeklySchedule
}

func (f *fakeWeeklyScheduleRepo) Upsert(_ context.Context, row schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	for i, existing := range f.rows {
		if existing.StaffID == row.StaffID && existing.DayOfWeek == row.DayOfWeek {
			row.ID = existing.ID
			f.rows[i] = row
			return row, nil
		}
	}
	row.ID = fmt.Sprintf("schedule-%d", len(f.rows)+1)
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeWeeklyScheduleRepo) ListByStaff(_ context.Context, staffID string) ([]schedule.WeeklySchedule, error) {
	var rows []schedule.WeeklySchedule
	for _, row := range f.rows {
		if row.StaffID == staffID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeWeeklyScheduleRepo) ListAvailableByDay(_ context.Context, dayOfWeek int) ([]schedule.WeeklySchedule, error) {
	var rows []schedule.WeeklySchedule
	for _, row := range f.rows {
		if row.DayOfWeek == dayOfWeek && row.IsAvailable {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type fakeBreakRepo struct {
	breaks []schedule.Break
}

func (f *fakeBreakRepo) Create(_ context.Context, brk schedule.Break) (schedule.Break, error) {
	brk.ID = fmt.Sprintf("break-%d", len(f.breaks)+1)
	f.breaks = append(f.breaks, brk)
	return brk, nil
}

func (f *fakeBreakRepo) ListByStaff(_ context.Context, staffID string) ([]schedule.Break, error) {
	var breaks []schedule.Break
	for _, brk := range f.breaks {
		if brk.StaffID == staffID {
			breaks = append(breaks, brk)
		}
	}
	return breaks, nil
}

type fakeStaffRepo struct {
	members     []staff.Staff
	assignments map[string][]string
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	for _, member := range f.members {
		if member.ID == id {
			return member, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]staff.Staff, error) {
	var active []staff.Staff
	for _, member := range f.members {
		if member.IsActive {
			active = append(active, member)
		}
	}
	return active, nil
}

func (f *fakeStaffRepo) ListStaffIDsForService(_ context.Context, serviceID string) ([]string, error) {
	return f.assignments[serviceID], nil
}

type fakeTimeOffRepo struct {
	requests []timeoff.TimeOffRequest
}

func (f *fakeTimeOffRepo) Create(_ context.Context, request timeoff.TimeOffRequest) (timeoff.TimeOffRequest, error) {
	request.ID = fmt.Sprintf("timeoff-%d", len(f.requests)+1)
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeTimeOffRepo) GetByID(_ context.Context, id string) (timeoff.TimeOffRequest, error) {
	for _, request := range f.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
}

func (f *fakeTimeOffRepo) List(_ context.Context, filter timeoff.ListFilter) ([]timeoff.TimeOffRequest, error) {
	var requests []timeoff.TimeOffRequest
	for _, request := range f.requests {
		if filter.StaffID != "" && request.StaffID != filter.StaffID {
			continue
		}
		if filter.Status != "" && string(request.Status) != filter.Status {
			continue
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (f *fakeTimeOffRepo) ListApprovedInRange(_ context.Context, staffID string, start, end time.Time) ([]timeoff.TimeOffRequest, error) {
	var requests []timeoff.TimeOffRequest
	for _, request := range f.requests {
		if request.Status != timeoff.StatusApproved {
			continue
		}
		if staffID != "" && request.StaffID != staffID {
			continue
		}
		if request.StartDate.After(end) || request.EndDate.Before(start) {
			continue
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (f *fakeTimeOffRepo) UpdateStatusIfPending(_ context.Context, id string, status timeoff.Status, reviewedBy string, approvedAt time.Time) (bool, error) {
	for i, request := range f.requests {
		if request.ID == id && request.Status == timeoff.StatusPending {
			f.requests[i].Status = status
			f.requests[i].ReviewedBy = &reviewedBy
			f.requests[i].ApprovedAt = &approvedAt
			return true, nil
		}
	}
	return false, nil
}

type fakeAppointmentRepo struct {
	appointments []appointment.Appointment
}

func (f *fakeAppointmentRepo) ListCompletedInRange(_ context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for _, appt := range f.appointments {
		if appt.StaffID != staffID || appt.Status != appointment.StatusCompleted {
			continue
		}
		if appt.Date.Before(start) || appt.Date.After(end) {
			continue
		}
		appointments = append(appointments, appt)
	}
	return appointments, nil
}

func (f *fakeAppointmentRepo) ListByStaffInRange(_ context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for _, appt := range f.appointments {
		if appt.StaffID != staffID {
			continue
		}
		if appt.Date.Before(start) || appt.Date.After(end) {
			continue
		}
		appointments = append(appointments, appt)
	}
	return appointments, nil
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func intPtr(v int) *int {
	return &v
}
