package role

import "errors"

var (
	ErrRoleNotFound                  = errors.New("Role not found")
	ErrRoleNameExists                = errors.New("Role name already exists")
	ErrGeneralTimeAssignmentNotFound = errors.New("General time assignment not found")
	ErrGeneralTimeAssignmentExists   = errors.New("General time assignment already exists for this role and time type")
)
