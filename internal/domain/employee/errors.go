package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrPayrollIDExists    = errors.New("Payroll ID already registered")
	ErrAssignmentNotFound = errors.New("Team assignment not found")
	ErrAssignmentOverlap  = errors.New("Employee already has an active team assignment in that period")
)
