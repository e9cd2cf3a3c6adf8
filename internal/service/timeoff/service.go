package timeoff

import (
	"context"
	"fmt"
	"time"

	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/calendar"
)

type serviceImpl struct {
	timeOffRepo timeoff.Repository
	staffRepo   staff.Repository
}

func NewService(timeOffRepo timeoff.Repository, staffRepo staff.Repository) timeoff.Service {
	return &serviceImpl{
		timeOffRepo: timeOffRepo,
		staffRepo:   staffRepo,
	}
}

// CreateRequest implements timeoff.Service.
func (s *serviceImpl) CreateRequest(ctx context.Context, req timeoff.CreateRequestRequest) (timeoff.TimeOffRequest, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffRequest{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return timeoff.TimeOffRequest{}, err
	}

	startDate, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	request := timeoff.TimeOffRequest{
		StaffID:   req.StaffID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Type:      timeoff.Type(req.Type),
		Status:    timeoff.StatusPending,
	}

	created, err := s.timeOffRepo.Create(ctx, request)
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return created, nil
}

// ListRequests implements timeoff.Service.
func (s *serviceImpl) ListRequests(ctx context.Context, filter timeoff.ListFilter) ([]timeoff.TimeOffRequest, error) {
	return s.timeOffRepo.List(ctx, filter)
}

// Review implements timeoff.Service.
//
// The transition runs as a conditional update on the pending status, so two
// concurrent reviews of the same request cannot both win; the loser gets
// ErrTimeOffAlreadyProcessed.
func (s *serviceImpl) Review(ctx context.Context, requestID string, approve bool, reviewedBy string) (timeoff.TimeOffRequest, error) {
	status := timeoff.StatusRejected
	if approve {
		status = timeoff.StatusApproved
	}

	updated, err := s.timeOffRepo.UpdateStatusIfPending(ctx, requestID, status, reviewedBy, time.Now())
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to review time off request: %w", err)
	}
	if !updated {
		// Either the request does not exist or it is already terminal.
		request, err := s.timeOffRepo.GetByID(ctx, requestID)
		if err != nil {
			return timeoff.TimeOffRequest{}, err
		}
		if request.Status.Terminal() {
			return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffAlreadyProcessed
		}
		return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
	}

	return s.timeOffRepo.GetByID(ctx, requestID)
}
