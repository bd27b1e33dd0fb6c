package interfaces

import (
	"context"
	"errors"

	"techmend/internal/domain/entities"
)

var (
	// ErrRequestNumberTaken reports that an intake raced another one onto the
	// same request number. The caller must retry with a fresh sequence.
	ErrRequestNumberTaken = errors.New("request number already taken")

	// ErrStaleAggregate reports that another writer updated the aggregate
	// since it was read. Last-write-wins is unsafe for the audit trail, so
	// the losing writer is told instead.
	ErrStaleAggregate = errors.New("aggregate version is stale")
)

// ListFilter narrows and pages List results.
type ListFilter struct {
	Status   entities.RequestStatus
	Priority entities.Priority
	Query    string // free text matched against number, customer name and phone
	Limit    int32
	Cursor   string // request number of the last item of the previous page
}

// IMaintenanceRequestRepository abstracts DynamoDB persistence for the
// request aggregate. Reads return the zero value when nothing matches.
type IMaintenanceRequestRepository interface {
	Create(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	GetByNumber(ctx context.Context, number string) (entities.MaintenanceRequest, error)
	List(ctx context.Context, filter ListFilter) ([]entities.MaintenanceRequest, string, error)
	Save(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	Delete(ctx context.Context, number string) error
}
