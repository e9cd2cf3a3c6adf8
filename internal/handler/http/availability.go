package http

import (
	"net/http"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/response"
	"github.com/salonova/scheduling-backend-go/internal/pkg/validator"
)

type AvailabilityHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
}

type AvailabilityHandlerImpl struct {
	availabilityService schedule.AvailabilityService
}

func NewAvailabilityHandler(availabilityService schedule.AvailabilityService) AvailabilityHandler {
	return &AvailabilityHandlerImpl{availabilityService: availabilityService}
}

// Resolve implements AvailabilityHandler.
func (h *AvailabilityHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}
	date, ok := validator.IsValidDate(dateParam)
	if !ok {
		response.BadRequest(w, "date must use the YYYY-MM-DD format", nil)
		return
	}

	serviceID := r.URL.Query().Get("service_id")

	staffIDs, err := h.availabilityService.ResolveAvailableStaff(r.Context(), date, serviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := schedule.AvailabilityResponse{
		Date:     dateParam,
		StaffIDs: staffIDs,
	}
	if serviceID != "" {
		resp.ServiceID = &serviceID
	}

	response.Success(w, resp)
}
