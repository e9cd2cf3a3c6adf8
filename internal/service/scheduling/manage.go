package scheduling

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/calendar"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
	"github.com/salonova/scheduling-backend-go/internal/repository/postgresql"
)

type managementServiceImpl struct {
	db                 *database.DB
	weeklyScheduleRepo schedule.WeeklyScheduleRepository
	breakRepo          schedule.BreakRepository
	staffRepo          staff.Repository
}

func NewManagementService(
	db *database.DB,
	weeklyScheduleRepo schedule.WeeklyScheduleRepository,
	breakRepo schedule.BreakRepository,
	staffRepo staff.Repository,
) schedule.ManagementService {
	return &managementServiceImpl{
		db:                 db,
		weeklyScheduleRepo: weeklyScheduleRepo,
		breakRepo:          breakRepo,
		staffRepo:          staffRepo,
	}
}

// UpsertWeeklySchedules implements schedule.ManagementService. The per-day
// upserts run in one transaction so a failed day does not leave the week
// half-updated.
func (s *managementServiceImpl) UpsertWeeklySchedules(ctx context.Context, req schedule.UpsertWeeklySchedulesRequest) ([]schedule.WeeklySchedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return nil, err
	}

	for _, day := range req.Days {
		minutes, err := calendar.WindowMinutes(day.StartTime, day.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule window: %w", err)
		}
		if minutes <= 0 {
			return nil, schedule.ErrInvalidScheduleWindow
		}
	}

	upserted := make([]schedule.WeeklySchedule, 0, len(req.Days))
	err := s.withTx(ctx, func(txCtx context.Context) error {
		for _, day := range req.Days {
			row, err := s.weeklyScheduleRepo.Upsert(txCtx, schedule.WeeklySchedule{
				StaffID:     req.StaffID,
				DayOfWeek:   day.DayOfWeek,
				StartTime:   day.StartTime,
				EndTime:     day.EndTime,
				IsAvailable: day.IsAvailable,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert schedule for day %d: %w", day.DayOfWeek, err)
			}
			upserted = append(upserted, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return upserted, nil
}

// withTx runs fn inside a database transaction. Without a database handle fn
// runs against the repositories directly.
func (s *managementServiceImpl) withTx(ctx context.Context, fn func(context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// ListWeeklySchedules implements schedule.ManagementService.
func (s *managementServiceImpl) ListWeeklySchedules(ctx context.Context, staffID string) ([]schedule.WeeklySchedule, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.weeklyScheduleRepo.ListByStaff(ctx, staffID)
}

// CreateBreak implements schedule.ManagementService.
func (s *managementServiceImpl) CreateBreak(ctx context.Context, req schedule.CreateBreakRequest) (schedule.Break, error) {
	if err := req.Validate(); err != nil {
		return schedule.Break{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return schedule.Break{}, err
	}

	minutes, err := calendar.WindowMinutes(req.StartTime, req.EndTime)
	if err != nil {
		return schedule.Break{}, fmt.Errorf("invalid break window: %w", err)
	}
	if minutes <= 0 {
		return schedule.Break{}, schedule.ErrInvalidScheduleWindow
	}

	created, err := s.breakRepo.Create(ctx, req.ToBreak())
	if err != nil {
		return schedule.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return created, nil
}

// ListBreaks implements schedule.ManagementService.
func (s *managementServiceImpl) ListBreaks(ctx context.Context, staffID string) ([]schedule.Break, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.breakRepo.ListByStaff(ctx, staffID)
}
