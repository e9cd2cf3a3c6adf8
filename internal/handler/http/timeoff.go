package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/salonova/scheduling-backend-go/internal/domain/timeoff"
	"github.com/salonova/scheduling-backend-go/internal/handler/http/response"
)

type TimeOffHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type TimeOffHandlerImpl struct {
	timeOffService timeoff.Service
}

func NewTimeOffHandler(timeOffService timeoff.Service) TimeOffHandler {
	return &TimeOffHandlerImpl{timeOffService: timeOffService}
}

// CreateRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req timeoff.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.timeOffService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off request submitted", timeoff.NewResponse(request))
}

// ListRequests implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := timeoff.ListFilter{
		StaffID: r.URL.Query().Get("staff_id"),
		Status:  r.URL.Query().Get("status"),
	}

	requests, err := h.timeOffService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]timeoff.Response, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, timeoff.NewResponse(request))
	}

	response.Success(w, resp)
}

// ApproveRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, true, "Time off request approved")
}

// RejectRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, false, "Time off request rejected")
}

func (h *TimeOffHandlerImpl) review(w http.ResponseWriter, r *http.Request, approve bool, message string) {
	requestID, ok := uuidParam(w, r, "requestID")
	if !ok {
		return
	}

	reviewedBy := reviewerFromContext(r)

	request, err := h.timeOffService.Review(r.Context(), requestID, approve, reviewedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, timeoff.NewResponse(request))
}

// reviewerFromContext pulls the authenticated manager's email out of the
// verified token. The auth middleware runs first, so a missing claim only
// happens on misconfigured routes.
func reviewerFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
