package timeoff

import (
	"time"

	"github.com/salonova/scheduling-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	StaffID   string `json:"staffId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Type      string `json:"type"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must use the YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must use the YYYY-MM-DD format",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick, personal, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staffId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Reason     string  `json:"reason"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	ReviewedBy *string `json:"reviewedBy,omitempty"`
	ApprovedAt *string `json:"approvedAt,omitempty"`
}

func NewResponse(request TimeOffRequest) Response {
	resp := Response{
		ID:         request.ID,
		StaffID:    request.StaffID,
		StartDate:  request.StartDate.Format("2006-01-02"),
		EndDate:    request.EndDate.Format("2006-01-02"),
		Reason:     request.Reason,
		Type:       string(request.Type),
		Status:     string(request.Status),
		ReviewedBy: request.ReviewedBy,
	}
	if request.ApprovedAt != nil {
		approvedAt := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}
