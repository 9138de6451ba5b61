package timetype

import (
	"strings"

	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

type CreateTimeTypeRequest struct {
	Name           string          `json:"name"`
	IsCapDev       bool            `json:"is_cap_dev"`
	WeeklySchedule *WeeklySchedule `json:"weekly_schedule,omitempty"`
}

func (r *CreateTimeTypeRequest) Validate() error {
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
	errs = append(errs, validateSchedule(r.WeeklySchedule)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimeTypeRequest struct {
	ID             string          `json:"id"`
	Name           *string         `json:"name,omitempty"`
	IsCapDev       *bool           `json:"is_cap_dev,omitempty"`
	WeeklySchedule *WeeklySchedule `json:"weekly_schedule,omitempty"`
}

func (r *UpdateTimeTypeRequest) Validate() error {
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
	errs = append(errs, validateSchedule(r.WeeklySchedule)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateSchedule(ws *WeeklySchedule) validator.ValidationErrors {
	if ws == nil {
		return nil
	}
	var errs validator.ValidationErrors
	for _, day := range ws.Days {
		if !validator.IsValidWeekday(strings.TrimSpace(day)) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_schedule.days",
				Message: "unknown weekday: " + day,
			})
		}
	}
	if ws.Hours != nil && *ws.Hours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_schedule.hours",
			Message: "hours must be positive",
		})
	}
	return errs
}

type TimeTypeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	IsCapDev       bool            `json:"is_cap_dev"`
	WeeklySchedule *WeeklySchedule `json:"weekly_schedule,omitempty"`
}
