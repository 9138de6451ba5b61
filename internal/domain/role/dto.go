package role

import "github.com/nzdigital/capdev-backend-go/internal/pkg/validator"

type CreateRoleRequest struct {
	Name string `json:"name"`
}

func (r *CreateRoleRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateGeneralTimeAssignmentRequest struct {
	RoleID       string  `json:"role_id"`
	TimeTypeID   string  `json:"time_type_id"`
	HoursPerWeek float64 `json:"hours_per_week"`
}

func (r *CreateGeneralTimeAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if validator.IsEmpty(r.TimeTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type_id",
			Message: "time_type_id is required",
		})
	}
	if r.HoursPerWeek <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_per_week",
			Message: "hours_per_week must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GeneralTimeAssignmentResponse struct {
	ID           string  `json:"id"`
	RoleID       string  `json:"role_id"`
	TimeTypeID   string  `json:"time_type_id"`
	HoursPerWeek float64 `json:"hours_per_week"`
}
