package response

import (
	"errors"
	"net/http"

	"github.com/salonova/scheduling-backend-go/internal/domain/auth"
	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWeeklyScheduleNotFound):
		NotFound(w, "Weekly schedule not found")
	case errors.Is(err, schedule.ErrBreakNotFound):
		NotFound(w, "Break not found")
	case errors.Is(err, schedule.ErrInvalidScheduleWindow):
		ValidationError(w, map[string]string{"endTime": "endTime must be after startTime"})
	case errors.Is(err, schedule.ErrInvalidDateRange):
		ValidationError(w, map[string]string{"endDate": "endDate must not be before startDate"})

	// Time off domain errors
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, "Time off request not found")
	case errors.Is(err, timeoff.ErrTimeOffAlreadyProcessed):
		Conflict(w, "Time off request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
