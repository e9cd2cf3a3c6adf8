package performance

import (
	"context"
	"testing"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/appointment"
	"github.com/salonova/scheduling-backend-go/internal/domain/performance"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	appointments []appointment.Appointment
}

func (f *fakeAppointmentRepo) ListCompletedInRange(_ context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for _, appt := range f.appointments {
		if appt.StaffID == staffID && appt.Status == appointment.StatusCompleted && !appt.Date.Before(start) && !appt.Date.After(end) {
			appointments = append(appointments, appt)
		}
	}
	return appointments, nil
}

func (f *fakeAppointmentRepo) ListByStaffInRange(_ context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for _, appt := range f.appointments {
		if appt.StaffID == staffID && !appt.Date.Before(start) && !appt.Date.After(end) {
			appointments = append(appointments, appt)
		}
	}
	return appointments, nil
}

type fakeReviewRepo struct {
	reviews []performance.Review
}

func (f *fakeReviewRepo) ListByStaffInRange(_ context.Context, staffID string, _, _ time.Time) ([]performance.Review, error) {
	var reviews []performance.Review
	for _, review := range f.reviews {
		if review.StaffID == staffID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

type fakeEarningRepo struct {
	earnings []performance.Earning
}

func (f *fakeEarningRepo) ListByStaffInRange(_ context.Context, staffID string, _, _ time.Time) ([]performance.Earning, error) {
	var earnings []performance.Earning
	for _, earning := range f.earnings {
		if earning.StaffID == staffID {
			earnings = append(earnings, earning)
		}
	}
	return earnings, nil
}

type fakeStaffRepo struct {
	members []staff.Staff
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
	return f.members, nil
}

func (f *fakeStaffRepo) ListStaffIDsForService(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestGetPerformanceMetrics(t *testing.T) {
	date := mustDate(t, "2024-03-05")
	appointmentRepo := &fakeAppointmentRepo{appointments: []appointment.Appointment{
		{ID: "appt-1", StaffID: "staff-1", Date: date, Status: appointment.StatusCompleted},
		{ID: "appt-2", StaffID: "staff-1", Date: date, Status: appointment.StatusCompleted},
		{ID: "appt-3", StaffID: "staff-1", Date: date, Status: appointment.StatusCancelled},
		{ID: "appt-4", StaffID: "staff-1", Date: date, Status: appointment.StatusNoShow},
	}}
	reviewRepo := &fakeReviewRepo{reviews: []performance.Review{
		{ID: "review-1", StaffID: "staff-1", Rating: 5},
		{ID: "review-2", StaffID: "staff-1", Rating: 4},
	}}
	earningRepo := &fakeEarningRepo{earnings: []performance.Earning{
		{ID: "earning-1", StaffID: "staff-1", Amount: 100, Type: performance.EarningTypeCommission},
		{ID: "earning-2", StaffID: "staff-1", Amount: 20.50, Type: performance.EarningTypeTip},
	}}
	staffRepo := &fakeStaffRepo{members: []staff.Staff{{ID: "staff-1", IsActive: true}}}
	svc := NewService(appointmentRepo, reviewRepo, earningRepo, staffRepo)

	metrics, err := svc.GetPerformanceMetrics(context.Background(), "staff-1", mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
	require.NoError(t, err)

	assert.Equal(t, 4, metrics.TotalAppointments)
	assert.Equal(t, 2, metrics.CompletedAppointments)
	assert.Equal(t, 1, metrics.CancelledAppointments)
	assert.Equal(t, 1, metrics.NoShowAppointments)
	assert.Equal(t, 50.0, metrics.CompletionRate)
	assert.Equal(t, 4.5, metrics.AverageRating)
	assert.Equal(t, 120.50, metrics.TotalEarnings)
	assert.Equal(t, 100.0, metrics.CommissionEarnings)
	assert.Equal(t, 20.50, metrics.TipEarnings)
}

func TestGetPerformanceMetrics_NoActivity(t *testing.T) {
	staffRepo := &fakeStaffRepo{members: []staff.Staff{{ID: "staff-1", IsActive: true}}}
	svc := NewService(&fakeAppointmentRepo{}, &fakeReviewRepo{}, &fakeEarningRepo{}, staffRepo)

	metrics, err := svc.GetPerformanceMetrics(context.Background(), "staff-1", mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
	require.NoError(t, err)

	// No appointments means no completion rate, not a division by zero.
	assert.Equal(t, 0, metrics.TotalAppointments)
	assert.Equal(t, float64(0), metrics.CompletionRate)
	assert.Equal(t, float64(0), metrics.AverageRating)
	assert.Equal(t, float64(0), metrics.TotalEarnings)
}

func TestGetPerformanceMetrics_InvalidDateRange(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeReviewRepo{}, &fakeEarningRepo{}, &fakeStaffRepo{})

	_, err := svc.GetPerformanceMetrics(context.Background(), "staff-1", mustDate(t, "2024-03-31"), mustDate(t, "2024-03-01"))
	assert.ErrorIs(t, err, schedule.ErrInvalidDateRange)
}

func TestGetPerformanceMetrics_UnknownStaff(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeReviewRepo{}, &fakeEarningRepo{}, &fakeStaffRepo{})

	_, err := svc.GetPerformanceMetrics(context.Background(), "staff-missing", mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
