package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/response"
	"github.com/salonova/scheduling-backend-go/internal/pkg/validator"
)

// uuidParam reads a URL parameter and rejects values that are not UUIDs
// before they reach a uuid-typed column.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if !validator.IsValidUUID(value) {
		response.BadRequest(w, name+" must be a valid UUID", nil)
		return "", false
	}
	return value, true
}

// parseDateRangeQuery reads the start_date and end_date query parameters.
// It writes the error response itself and reports ok=false when either
// parameter is missing or malformed.
func parseDateRangeQuery(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")
	if startParam == "" || endParam == "" {
		response.BadRequest(w, "start_date and end_date query parameters are required", nil)
		return time.Time{}, time.Time{}, false
	}

	start, startOK := validator.IsValidDate(startParam)
	end, endOK := validator.IsValidDate(endParam)
	if !startOK || !endOK {
		response.BadRequest(w, "start_date and end_date must use the YYYY-MM-DD format", nil)
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
