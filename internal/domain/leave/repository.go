package leave

import (
	"context"
	"time"
)

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Leave, error)
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string, from, to time.Time) ([]Leave, error)
	// UpsertExternal inserts or refreshes a payroll-imported record keyed
	// by its external id.
	UpsertExternal(ctx context.Context, leave Leave) (Leave, error)
	Delete(ctx context.Context, id string) error
}
