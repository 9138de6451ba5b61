package response

import (
	"errors"
	"net/http"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/integration"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/project"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPayrollIDExists):
		Conflict(w, "Payroll ID already registered")
	case errors.Is(err, employee.ErrAssignmentNotFound):
		NotFound(w, "Team assignment not found")
	case errors.Is(err, employee.ErrAssignmentOverlap):
		Conflict(w, "Employee already has an active team assignment in that period")

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists")
	case errors.Is(err, team.ErrBoardNotFound):
		NotFound(w, "Board not found")
	case errors.Is(err, team.ErrBoardExists):
		Conflict(w, "Board already linked to this team")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, role.ErrGeneralTimeAssignmentNotFound):
		NotFound(w, "General time assignment not found")
	case errors.Is(err, role.ErrGeneralTimeAssignmentExists):
		Conflict(w, "General time assignment already exists for this role and time type")

	// Time type domain errors
	case errors.Is(err, timetype.ErrTimeTypeNotFound):
		NotFound(w, "Time type not found")
	case errors.Is(err, timetype.ErrTimeTypeNameExists):
		Conflict(w, "Time type name already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Integration domain errors
	case errors.Is(err, integration.ErrTokenNotFound):
		BadRequest(w, "Payroll integration is not connected", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
