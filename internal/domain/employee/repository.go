package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}

// AssignmentRepository - interface for assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Assignment, error)
	Update(ctx context.Context, assignment Assignment) error
	Delete(ctx context.Context, id string) error
}
