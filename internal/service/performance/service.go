package performance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/appointment"
	"github.com/salonova/scheduling-backend-go/internal/domain/performance"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type serviceImpl struct {
	appointmentRepo appointment.Repository
	reviewRepo      performance.ReviewRepository
	earningRepo     performance.EarningRepository
	staffRepo       staff.Repository
}

func NewService(
	appointmentRepo appointment.Repository,
	reviewRepo performance.ReviewRepository,
	earningRepo performance.EarningRepository,
	staffRepo staff.Repository,
) performance.Service {
	return &serviceImpl{
		appointmentRepo: appointmentRepo,
		reviewRepo:      reviewRepo,
		earningRepo:     earningRepo,
		staffRepo:       staffRepo,
	}
}

// GetPerformanceMetrics implements performance.Service.
//
// Three independent read-and-reduce passes over appointments, reviews and
// earnings. The sources are not reconciled against each other; this is a
// best-effort report, not a ledger.
func (s *serviceImpl) GetPerformanceMetrics(ctx context.Context, staffID string, startDate, endDate time.Time) (performance.Metrics, error) {
	if endDate.Before(startDate) {
		return performance.Metrics{}, schedule.ErrInvalidDateRange
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return performance.Metrics{}, err
	}

	start := calendar.Truncate(startDate)
	end := calendar.Truncate(endDate)

	metrics := performance.Metrics{
		StaffID:     staffID,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appointments, err := s.appointmentRepo.ListByStaffInRange(gCtx, staffID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load appointments: %w", err)
		}
		for _, appt := range appointments {
			metrics.TotalAppointments++
			switch appt.Status {
			case appointment.StatusCompleted:
				metrics.CompletedAppointments++
			case appointment.StatusCancelled:
				metrics.CancelledAppointments++
			case appointment.StatusNoShow:
				metrics.NoShowAppointments++
			}
		}
		return nil
	})

	g.Go(func() error {
		reviews, err := s.reviewRepo.ListByStaffInRange(gCtx, staffID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}
		if len(reviews) == 0 {
			return nil
		}
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		metrics.AverageRating = round2(float64(sum) / float64(len(reviews)))
		return nil
	})

	g.Go(func() error {
		earnings, err := s.earningRepo.ListByStaffInRange(gCtx, staffID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load earnings: %w", err)
		}
		for _, earning := range earnings {
			metrics.TotalEarnings += earning.Amount
			switch earning.Type {
			case performance.EarningTypeCommission:
				metrics.CommissionEarnings += earning.Amount
			case performance.EarningTypeTip:
				metrics.TipEarnings += earning.Amount
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return performance.Metrics{}, err
	}

	if metrics.TotalAppointments > 0 {
		metrics.CompletionRate = round2(float64(metrics.CompletedAppointments) / float64(metrics.TotalAppointments) * 100)
	}

	return metrics, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
