package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/salonova/scheduling-backend-go/internal/domain/schedule"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	UpsertWeeklySchedules(w http.ResponseWriter, r *http.Request)
	ListWeeklySchedules(w http.ResponseWriter, r *http.Request)
	CreateBreak(w http.ResponseWriter, r *http.Request)
	ListBreaks(w http.ResponseWriter, r *http.Request)
	GetUtilization(w http.ResponseWriter, r *http.Request)
	GetSalonUtilization(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	managementService  schedule.ManagementService
	utilizationService schedule.UtilizationService
}

func NewScheduleHandler(managementService schedule.ManagementService, utilizationService schedule.UtilizationService) ScheduleHandler {
	return &ScheduleHandlerImpl{
		managementService:  managementService,
		utilizationService: utilizationService,
	}
}

// UpsertWeeklySchedules implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpsertWeeklySchedules(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	var req schedule.UpsertWeeklySchedulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertWeeklySchedules decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = staffID

	rows, err := h.managementService.UpsertWeeklySchedules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]schedule.WeeklyScheduleResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, schedule.NewWeeklyScheduleResponse(row))
	}

	response.SuccessWithMessage(w, "Weekly schedules updated", resp)
}

// ListWeeklySchedules implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListWeeklySchedules(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	rows, err := h.managementService.ListWeeklySchedules(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]schedule.WeeklyScheduleResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, schedule.NewWeeklyScheduleResponse(row))
	}

	response.Success(w, resp)
}

// CreateBreak implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateBreak(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	var req schedule.CreateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBreak decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = staffID

	brk, err := h.managementService.CreateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break created", schedule.NewBreakResponse(brk))
}

// ListBreaks implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListBreaks(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	breaks, err := h.managementService.ListBreaks(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]schedule.BreakResponse, 0, len(breaks))
	for _, brk := range breaks {
		resp = append(resp, schedule.NewBreakResponse(brk))
	}

	response.Success(w, resp)
}

// GetUtilization implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetUtilization(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParam(w, r, "staffID")
	if !ok {
		return
	}

	start, end, ok := parseDateRangeQuery(w, r)
	if !ok {
		return
	}
	includeBreaks := r.URL.Query().Get("include_breaks") == "true"

	result, err := h.utilizationService.CalculateUtilization(r.Context(), staffID, start, end, includeBreaks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.NewUtilizationResponse(result))
}

// GetSalonUtilization implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetSalonUtilization(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRangeQuery(w, r)
	if !ok {
		return
	}

	results, err := h.utilizationService.CalculateSalonUtilization(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]schedule.UtilizationResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, schedule.NewUtilizationResponse(result))
	}

	response.Success(w, resp)
}
