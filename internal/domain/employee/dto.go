package employee

import (
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	PayrollID    string  `json:"payroll_id"`
	HoursPerWeek float64 `json:"hours_per_week"`
	RoleID       *string `json:"role_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.HoursPerWeek < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_per_week",
			Message: "hours_per_week must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string   `json:"id"`
	Name         *string  `json:"name,omitempty"`
	PayrollID    *string  `json:"payroll_id,omitempty"`
	HoursPerWeek *float64 `json:"hours_per_week,omitempty"`
	RoleID       *string  `json:"role_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.HoursPerWeek != nil && *r.HoursPerWeek < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_per_week",
			Message: "hours_per_week must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	TeamID     string  `json:"team_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	PayrollID    string               `json:"payroll_id"`
	HoursPerWeek float64              `json:"hours_per_week"`
	RoleID       *string              `json:"role_id,omitempty"`
	Assignments  []AssignmentResponse `json:"assignments,omitempty"`
}

type AssignmentResponse struct {
	ID        string  `json:"id"`
	TeamID    string  `json:"team_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}
