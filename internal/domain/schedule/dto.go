package schedule

import (
	"time"

	"github.com/salonova/scheduling-backend-go/internal/pkg/validator"
)

type WeeklyScheduleDay struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

type UpsertWeeklySchedulesRequest struct {
	StaffID string              `json:"staffId"`
	Days    []WeeklyScheduleDay `json:"days"`
}

func (r *UpsertWeeklySchedulesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day is required",
		})
	}

	for _, day := range r.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "dayOfWeek",
				Message: "dayOfWeek must be between 0 and 6",
			})
			continue
		}
		if !validator.IsValidClockTime(day.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "startTime",
				Message: "startTime must be a valid HH:MM clock time",
			})
		}
		if !validator.IsValidClockTime(day.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "endTime",
				Message: "endTime must be a valid HH:MM clock time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateBreakRequest struct {
	StaffID   string  `json:"staffId"`
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	BreakType string  `json:"breakType"`
}

func (r *CreateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	// Exactly one of dayOfWeek (recurring) or date (one-off) must be set
	if r.DayOfWeek == nil && r.Date == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "dayOfWeek",
			Message: "either dayOfWeek or date is required",
		})
	}
	if r.DayOfWeek != nil && r.Date != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "dayOfWeek",
			Message: "dayOfWeek and date are mutually exclusive",
		})
	}
	if r.DayOfWeek != nil && (*r.DayOfWeek < 0 || *r.DayOfWeek > 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "dayOfWeek",
			Message: "dayOfWeek must be between 0 and 6",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must use the YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be a valid HH:MM clock time",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be a valid HH:MM clock time",
		})
	}

	if !validator.IsInSlice(r.BreakType, BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "breakType",
			Message: "breakType must be one of lunch, rest, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklyScheduleResponse struct {
	ID          string `json:"id"`
	StaffID     string `json:"staffId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

func NewWeeklyScheduleResponse(row WeeklySchedule) WeeklyScheduleResponse {
	return WeeklyScheduleResponse{
		ID:          row.ID,
		StaffID:     row.StaffID,
		DayOfWeek:   row.DayOfWeek,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		IsAvailable: row.IsAvailable,
	}
}

type BreakResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staffId"`
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	BreakType string  `json:"breakType"`
}

func NewBreakResponse(brk Break) BreakResponse {
	resp := BreakResponse{
		ID:        brk.ID,
		StaffID:   brk.StaffID,
		DayOfWeek: brk.DayOfWeek,
		StartTime: brk.StartTime,
		EndTime:   brk.EndTime,
		BreakType: string(brk.BreakType),
	}
	if brk.Date != nil {
		date := brk.Date.Format("2006-01-02")
		resp.Date = &date
	}
	return resp
}

type AvailabilityResponse struct {
	Date      string   `json:"date"`
	ServiceID *string  `json:"serviceId,omitempty"`
	StaffIDs  []string `json:"staffIds"`
}

type UtilizationResponse struct {
	StaffID            string  `json:"staffId"`
	PeriodStart        string  `json:"periodStart"`
	PeriodEnd          string  `json:"periodEnd"`
	ScheduledMinutes   int     `json:"scheduledMinutes"`
	WorkedMinutes      int     `json:"workedMinutes"`
	UtilizationPercent float64 `json:"utilizationPercent"`
}

func NewUtilizationResponse(result UtilizationResult) UtilizationResponse {
	return UtilizationResponse{
		StaffID:            result.StaffID,
		PeriodStart:        result.PeriodStart.Format("2006-01-02"),
		PeriodEnd:          result.PeriodEnd.Format("2006-01-02"),
		ScheduledMinutes:   result.ScheduledMinutes,
		WorkedMinutes:      result.WorkedMinutes,
		UtilizationPercent: result.UtilizationPercent,
	}
}

// ToBreak converts a validated request into a domain break. Call Validate
// first; parse failures surface as zero values otherwise.
func (r *CreateBreakRequest) ToBreak() Break {
	brk := Break{
		StaffID:   r.StaffID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		BreakType: BreakType(r.BreakType),
	}
	if r.Date != nil {
		if date, err := time.Parse("2006-01-02", *r.Date); err == nil {
			brk.Date = &date
		}
	}
	return brk
}
