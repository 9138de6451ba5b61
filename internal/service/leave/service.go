package leave

import (
	"context"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type LeaveService interface {
	Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	Get(ctx context.Context, id string) (leave.LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type leaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       req.Type,
		Status:     req.Status,
		Duration:   req.Duration,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

func (s *leaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	entity, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(entity), nil
}

func (s *leaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, toLeaveResponse(l))
	}
	return responses, nil
}

func (s *leaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

func toLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date.Format(dateLayout),
		Type:       l.Type,
		Status:     l.Status,
		Duration:   l.Duration,
	}
}
