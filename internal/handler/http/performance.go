package http

import (
	"net/http"

	"github.com/salonova/scheduling-backend-go/internal/domain/performance"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// GetMetrics implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	start, end, ok := parseDateRangeQuery(w, r)
	if !ok {
		return
	}

	metrics, err := h.performanceService.GetPerformanceMetrics(r.Context(), staffID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, performance.NewMetricsResponse(metrics))
}
