package scheduling

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/appointment"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type utilizationServiceImpl struct {
	weeklyScheduleRepo schedule.WeeklyScheduleRepository
	breakRepo          schedule.BreakRepository
	appointmentRepo    appointment.Repository
	staffRepo          staff.Repository
}

func NewUtilizationService(
	weeklyScheduleRepo schedule.WeeklyScheduleRepository,
	breakRepo schedule.BreakRepository,
	appointmentRepo appointment.Repository,
	staffRepo staff.Repository,
) schedule.UtilizationService {
	return &utilizationServiceImpl{
		weeklyScheduleRepo: weeklyScheduleRepo,
		breakRepo:          breakRepo,
		appointmentRepo:    appointmentRepo,
		staffRepo:          staffRepo,
	}
}

// CalculateUtilization implements schedule.UtilizationService.
func (s *utilizationServiceImpl) CalculateUtilization(ctx context.Context, staffID string, startDate, endDate time.Time, includeBreaks bool) (schedule.UtilizationResult, error) {
	if endDate.Before(startDate) {
		return schedule.UtilizationResult{}, schedule.ErrInvalidDateRange
	}

	rows, err := s.weeklyScheduleRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return schedule.UtilizationResult{}, fmt.Errorf("failed to load weekly schedules: %w", err)
	}

	byDay := make(map[int]schedule.WeeklySchedule, len(rows))
	for _, row := range rows {
		if row.IsAvailable {
			byDay[row.DayOfWeek] = row
		}
	}

	var breaks []schedule.Break
	if includeBreaks {
		breaks, err = s.breakRepo.ListByStaff(ctx, staffID)
		if err != nil {
			return schedule.UtilizationResult{}, fmt.Errorf("failed to load breaks: %w", err)
		}
	}

	scheduledMinutes := 0
	for _, date := range calendar.DateRange(startDate, endDate) {
		row, ok := byDay[calendar.Weekday(date)]
		if !ok {
			continue
		}
		minutes, err := calendar.WindowMinutes(row.StartTime, row.EndTime)
		if err != nil {
			return schedule.UtilizationResult{}, fmt.Errorf("malformed schedule window for staff %s: %w", staffID, err)
		}
		if minutes <= 0 {
			return schedule.UtilizationResult{}, schedule.ErrInvalidScheduleWindow
		}
		if includeBreaks {
			breakMinutes, err := breakMinutesForDate(breaks, date)
			if err != nil {
				return schedule.UtilizationResult{}, err
			}
			minutes -= breakMinutes
			if minutes < 0 {
				minutes = 0
			}
		}
		scheduledMinutes += minutes
	}

	appointments, err := s.appointmentRepo.ListCompletedInRange(ctx, staffID, calendar.Truncate(startDate), calendar.Truncate(endDate))
	if err != nil {
		return schedule.UtilizationResult{}, fmt.Errorf("failed to load completed appointments: %w", err)
	}

	workedMinutes := 0
	for _, appt := range appointments {
		workedMinutes += appt.Minutes()
	}

	result := schedule.UtilizationResult{
		StaffID:          staffID,
		PeriodStart:      calendar.Truncate(startDate),
		PeriodEnd:        calendar.Truncate(endDate),
		ScheduledMinutes: scheduledMinutes,
		WorkedMinutes:    workedMinutes,
	}
	if scheduledMinutes > 0 {
		result.UtilizationPercent = round2(float64(workedMinutes) / float64(scheduledMinutes) * 100)
	}

	return result, nil
}

// CalculateSalonUtilization implements schedule.UtilizationService.
func (s *utilizationServiceImpl) CalculateSalonUtilization(ctx context.Context, startDate, endDate time.Time) ([]schedule.UtilizationResult, error) {
	if endDate.Before(startDate) {
		return nil, schedule.ErrInvalidDateRange
	}

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}

	results := make([]schedule.UtilizationResult, len(members))
	g, gCtx := errgroup.WithContext(ctx)
	for i, member := range members {
		g.Go(func() error {
			result, err := s.CalculateUtilization(gCtx, member.ID, startDate, endDate, false)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// breakMinutesForDate sums break windows applying on the given date:
// recurring breaks by weekday, one-off breaks by exact date.
func breakMinutesForDate(breaks []schedule.Break, date time.Time) (int, error) {
	total := 0
	for _, brk := range breaks {
		applies := false
		if brk.Recurring() {
			applies = *brk.DayOfWeek == calendar.Weekday(date)
		} else if brk.Date != nil {
			applies = calendar.SameDate(*brk.Date, date)
		}
		if !applies {
			continue
		}

		minutes, err := calendar.WindowMinutes(brk.StartTime, brk.EndTime)
		if err != nil {
			return 0, fmt.Errorf("malformed break window: %w", err)
		}
		if minutes > 0 {
			total += minutes
		}
	}
	return total, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
