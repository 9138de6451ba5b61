package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nzdigital/capdev-backend-go/internal/domain/project"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
)

type MasterService interface {
	// Team operations
	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error)
	GetTeam(ctx context.Context, id string) (team.TeamResponse, error)
	ListTeams(ctx context.Context) ([]team.TeamResponse, error)
	UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, id string) error
	CreateBoard(ctx context.Context, req team.CreateBoardRequest) (team.BoardResponse, error)
	DeleteBoard(ctx context.Context, id string) error

	// Role operations
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetRole(ctx context.Context, id string) (role.RoleResponse, error)
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error

	// General time assignment operations
	CreateGeneralTimeAssignment(ctx context.Context, req role.CreateGeneralTimeAssignmentRequest) (role.GeneralTimeAssignmentResponse, error)
	ListGeneralTimeAssignments(ctx context.Context, roleID string) ([]role.GeneralTimeAssignmentResponse, error)
	DeleteGeneralTimeAssignment(ctx context.Context, id string) error

	// Time type operations
	CreateTimeType(ctx context.Context, req timetype.CreateTimeTypeRequest) (timetype.TimeTypeResponse, error)
	GetTimeType(ctx context.Context, id string) (timetype.TimeTypeResponse, error)
	ListTimeTypes(ctx context.Context) ([]timetype.TimeTypeResponse, error)
	UpdateTimeType(ctx context.Context, req timetype.UpdateTimeTypeRequest) error
	DeleteTimeType(ctx context.Context, id string) error

	// Project listings (projects are written by the Jira sync, not by hand)
	ListProjects(ctx context.Context) ([]project.ProjectResponse, error)
	ListProjectsByBoard(ctx context.Context, boardID string) ([]project.ProjectResponse, error)
}

type masterServiceImpl struct {
	teamRepo     team.TeamRepository
	boardRepo    team.BoardRepository
	roleRepo     role.RoleRepository
	gtaRepo      role.GeneralTimeAssignmentRepository
	timeTypeRepo timetype.TimeTypeRepository
	projectRepo  project.ProjectRepository
}

func NewMasterService(
	teamRepo team.TeamRepository,
	boardRepo team.BoardRepository,
	roleRepo role.RoleRepository,
	gtaRepo role.GeneralTimeAssignmentRepository,
	timeTypeRepo timetype.TimeTypeRepository,
	projectRepo project.ProjectRepository,
) MasterService {
	return &masterServiceImpl{
		teamRepo:     teamRepo,
		boardRepo:    boardRepo,
		roleRepo:     roleRepo,
		gtaRepo:      gtaRepo,
		timeTypeRepo: timeTypeRepo,
		projectRepo:  projectRepo,
	}
}

// ==================== TEAM OPERATIONS ====================

func (s *masterServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.teamRepo.Create(ctx, team.Team{Name: req.Name})
	if err != nil {
		if isUniqueViolation(err) {
			return team.TeamResponse{}, team.ErrTeamNameExists
		}
		return team.TeamResponse{}, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(created), nil
}

func (s *masterServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	entity, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return toTeamResponse(entity), nil
}

func (s *masterServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, toTeamResponse(t))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.teamRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if req.Name != nil {
		entity.Name = *req.Name
	}

	if err := s.teamRepo.Update(ctx, entity); err != nil {
		if isUniqueViolation(err) {
			return team.ErrTeamNameExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.Delete(ctx, id)
}

func (s *masterServiceImpl) CreateBoard(ctx context.Context, req team.CreateBoardRequest) (team.BoardResponse, error) {
	if err := req.Validate(); err != nil {
		return team.BoardResponse{}, err
	}

	if _, err := s.teamRepo.GetByID(ctx, req.TeamID); err != nil {
		return team.BoardResponse{}, err
	}

	created, err := s.boardRepo.Create(ctx, team.Board{
		TeamID:      req.TeamID,
		JiraBoardID: req.JiraBoardID,
		Name:        req.Name,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return team.BoardResponse{}, team.ErrBoardExists
		}
		return team.BoardResponse{}, fmt.Errorf("failed to create board: %w", err)
	}

	return toBoardResponse(created), nil
}

func (s *masterServiceImpl) DeleteBoard(ctx context.Context, id string) error {
	return s.boardRepo.Delete(ctx, id)
}

// ==================== ROLE OPERATIONS ====================

func (s *masterServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{Name: req.Name})
	if err != nil {
		if isUniqueViolation(err) {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return role.RoleResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	entity, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.RoleResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *masterServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if req.Name != nil {
		entity.Name = *req.Name
	}

	if err := s.roleRepo.Update(ctx, entity); err != nil {
		if isUniqueViolation(err) {
			return role.ErrRoleNameExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.roleRepo.Delete(ctx, id)
}

// ==================== GENERAL TIME ASSIGNMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateGeneralTimeAssignment(ctx context.Context, req role.CreateGeneralTimeAssignmentRequest) (role.GeneralTimeAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return role.GeneralTimeAssignmentResponse{}, err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return role.GeneralTimeAssignmentResponse{}, err
	}
	if _, err := s.timeTypeRepo.GetByID(ctx, req.TimeTypeID); err != nil {
		return role.GeneralTimeAssignmentResponse{}, err
	}

	created, err := s.gtaRepo.Create(ctx, role.GeneralTimeAssignment{
		RoleID:       req.RoleID,
		TimeTypeID:   req.TimeTypeID,
		HoursPerWeek: req.HoursPerWeek,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return role.GeneralTimeAssignmentResponse{}, role.ErrGeneralTimeAssignmentExists
		}
		return role.GeneralTimeAssignmentResponse{}, fmt.Errorf("failed to create general time assignment: %w", err)
	}

	return toGeneralTimeAssignmentResponse(created), nil
}

func (s *masterServiceImpl) ListGeneralTimeAssignments(ctx context.Context, roleID string) ([]role.GeneralTimeAssignmentResponse, error) {
	assignments, err := s.gtaRepo.GetByRoleID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	responses := make([]role.GeneralTimeAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toGeneralTimeAssignmentResponse(a))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteGeneralTimeAssignment(ctx context.Context, id string) error {
	return s.gtaRepo.Delete(ctx, id)
}

// ==================== TIME TYPE OPERATIONS ====================

func (s *masterServiceImpl) CreateTimeType(ctx context.Context, req timetype.CreateTimeTypeRequest) (timetype.TimeTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return timetype.TimeTypeResponse{}, err
	}

	created, err := s.timeTypeRepo.Create(ctx, timetype.TimeType{
		Name:           req.Name,
		IsCapDev:       req.IsCapDev,
		WeeklySchedule: req.WeeklySchedule,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return timetype.TimeTypeResponse{}, timetype.ErrTimeTypeNameExists
		}
		return timetype.TimeTypeResponse{}, fmt.Errorf("failed to create time type: %w", err)
	}

	return toTimeTypeResponse(created), nil
}

func (s *masterServiceImpl) GetTimeType(ctx context.Context, id string) (timetype.TimeTypeResponse, error) {
	entity, err := s.timeTypeRepo.GetByID(ctx, id)
	if err != nil {
		return timetype.TimeTypeResponse{}, err
	}
	return toTimeTypeResponse(entity), nil
}

func (s *masterServiceImpl) ListTimeTypes(ctx context.Context) ([]timetype.TimeTypeResponse, error) {
	timeTypes, err := s.timeTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]timetype.TimeTypeResponse, 0, len(timeTypes))
	for _, tt := range timeTypes {
		responses = append(responses, toTimeTypeResponse(tt))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateTimeType(ctx context.Context, req timetype.UpdateTimeTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.timeTypeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.IsCapDev != nil {
		entity.IsCapDev = *req.IsCapDev
	}
	if req.WeeklySchedule != nil {
		entity.WeeklySchedule = req.WeeklySchedule
	}

	if err := s.timeTypeRepo.Update(ctx, entity); err != nil {
		if isUniqueViolation(err) {
			return timetype.ErrTimeTypeNameExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteTimeType(ctx context.Context, id string) error {
	return s.timeTypeRepo.Delete(ctx, id)
}

// ==================== PROJECT LISTINGS ====================

func (s *masterServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func (s *masterServiceImpl) ListProjectsByBoard(ctx context.Context, boardID string) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toTeamResponse(t team.Team) team.TeamResponse {
	resp := team.TeamResponse{ID: t.ID, Name: t.Name}
	for _, b := range t.Boards {
		resp.Boards = append(resp.Boards, toBoardResponse(b))
	}
	return resp
}

func toBoardResponse(b team.Board) team.BoardResponse {
	return team.BoardResponse{
		ID:          b.ID,
		TeamID:      b.TeamID,
		JiraBoardID: b.JiraBoardID,
		Name:        b.Name,
	}
}

func toGeneralTimeAssignmentResponse(a role.GeneralTimeAssignment) role.GeneralTimeAssignmentResponse {
	return role.GeneralTimeAssignmentResponse{
		ID:           a.ID,
		RoleID:       a.RoleID,
		TimeTypeID:   a.TimeTypeID,
		HoursPerWeek: a.HoursPerWeek,
	}
}

func toTimeTypeResponse(tt timetype.TimeType) timetype.TimeTypeResponse {
	return timetype.TimeTypeResponse{
		ID:             tt.ID,
		Name:           tt.Name,
		IsCapDev:       tt.IsCapDev,
		WeeklySchedule: tt.WeeklySchedule,
	}
}

func toProjectResponses(projects []project.Project) []project.ProjectResponse {
	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ProjectResponse{
			ID:       p.ID,
			BoardID:  p.BoardID,
			Name:     p.Name,
			JiraID:   p.JiraID,
			IsCapDev: p.IsCapDev,
		})
	}
	return responses
}
