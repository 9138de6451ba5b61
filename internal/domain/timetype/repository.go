package timetype

import "context"

// TimeTypeRepository - interface for time_types table
type TimeTypeRepository interface {
	Create(ctx context.Context, timeType TimeType) (TimeType, error)
	GetByID(ctx context.Context, id string) (TimeType, error)
	List(ctx context.Context) ([]TimeType, error)
	Update(ctx context.Context, timeType TimeType) error
	Delete(ctx context.Context, id string) error
}
