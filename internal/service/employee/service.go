package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
	"github.com/nzdigital/capdev-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	// CreateAssignment adds a team assignment, rejecting any that would
	// overlap an existing one for the same employee.
	CreateAssignment(ctx context.Context, req employee.CreateAssignmentRequest) (employee.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	assignmentRepo employee.AssignmentRepository
	withTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo employee.AssignmentRepository,
) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity := employee.Employee{
		Name:         req.Name,
		PayrollID:    req.PayrollID,
		HoursPerWeek: req.HoursPerWeek,
		RoleID:       req.RoleID,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.EmployeeResponse{}, employee.ErrPayrollIDExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(entity), nil
}

func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.PayrollID != nil {
		entity.PayrollID = *req.PayrollID
	}
	if req.HoursPerWeek != nil {
		entity.HoursPerWeek = *req.HoursPerWeek
	}
	if req.RoleID != nil {
		entity.RoleID = req.RoleID
	}

	if err := s.employeeRepo.Update(ctx, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrPayrollIDExists
		}
		return err
	}
	return nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeServiceImpl) CreateAssignment(ctx context.Context, req employee.CreateAssignmentRequest) (employee.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.AssignmentResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		endDate = &parsed
	}

	candidate := employee.Assignment{
		EmployeeID: req.EmployeeID,
		TeamID:     req.TeamID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	// Read-then-insert inside one transaction so two concurrent requests
	// cannot both pass the overlap check.
	var created employee.Assignment
	err := s.withTx(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		existing, err := s.assignmentRepo.GetByEmployeeID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		for _, a := range existing {
			if a.Overlaps(candidate) {
				return employee.ErrAssignmentOverlap
			}
		}

		created, err = s.assignmentRepo.Create(ctx, candidate)
		return err
	})
	if err != nil {
		return employee.AssignmentResponse{}, err
	}

	return toAssignmentResponse(created), nil
}

func (s *employeeServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	return s.assignmentRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		PayrollID:    e.PayrollID,
		HoursPerWeek: e.HoursPerWeek,
		RoleID:       e.RoleID,
	}
	for _, a := range e.Assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(a))
	}
	return resp
}

func toAssignmentResponse(a employee.Assignment) employee.AssignmentResponse {
	resp := employee.AssignmentResponse{
		ID:        a.ID,
		TeamID:    a.TeamID,
		StartDate: a.StartDate.Format(dateLayout),
	}
	if a.EndDate != nil {
		formatted := a.EndDate.Format(dateLayout)
		resp.EndDate = &formatted
	}
	return resp
}
