package timeoff

import "context"

type Service interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (TimeOffRequest, error)
	ListRequests(ctx context.Context, filter ListFilter) ([]TimeOffRequest, error)
	// Review transitions a pending request to approved or rejected. Both
	// outcomes stamp ApprovedAt; reviewing a decided request fails with
	// ErrTimeOffAlreadyProcessed.
	Review(ctx context.Context, requestID string, approve bool, reviewedBy string) (TimeOffRequest, error)
}
