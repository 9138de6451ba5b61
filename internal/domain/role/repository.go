package role

import "context"

// RoleRepository - interface for roles table
type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, role Role) error
	Delete(ctx context.Context, id string) error
}

// GeneralTimeAssignmentRepository - interface for general_time_assignments table
type GeneralTimeAssignmentRepository interface {
	Create(ctx context.Context, assignment GeneralTimeAssignment) (GeneralTimeAssignment, error)
	GetByRoleID(ctx context.Context, roleID string) ([]GeneralTimeAssignment, error)
	List(ctx context.Context) ([]GeneralTimeAssignment, error)
	Delete(ctx context.Context, id string) error
}
