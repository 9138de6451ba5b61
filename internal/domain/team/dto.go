package team

import "github.com/nzdigital/capdev-backend-go/internal/pkg/validator"

type CreateTeamRequest struct {
	Name string `json:"name"`
}

func (r *CreateTeamRequest) Validate() error {
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

type UpdateTeamRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateTeamRequest) Validate() error {
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

type CreateBoardRequest struct {
	TeamID      string `json:"team_id"`
	JiraBoardID string `json:"jira_board_id"`
	Name        string `json:"name"`
}

func (r *CreateBoardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}
	if validator.IsEmpty(r.JiraBoardID) {
		errs = append(errs, validator.ValidationError{
			Field:   "jira_board_id",
			Message: "jira_board_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Boards []BoardResponse `json:"boards,omitempty"`
}

type BoardResponse struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	JiraBoardID string `json:"jira_board_id"`
	Name        string `json:"name"`
}
