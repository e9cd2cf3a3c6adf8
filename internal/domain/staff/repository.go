package staff

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
	ListActive(ctx context.Context) ([]Staff, error)
	// ListStaffIDsForService returns the ids of staff assigned to a service.
	ListStaffIDsForService(ctx context.Context, serviceID string) ([]string, error)
}
