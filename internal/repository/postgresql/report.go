package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

// reportRepositoryImpl assembles the read-only snapshot the report engine
// consumes. Lookup-table reads delegate to the entity repositories; the
// employee and activity reads need report-specific filtering and joins so
// they are implemented here directly.
type reportRepositoryImpl struct {
	db           *database.DB
	teamRepo     team.TeamRepository
	roleRepo     role.RoleRepository
	timeTypeRepo timetype.TimeTypeRepository
	gtaRepo      role.GeneralTimeAssignmentRepository
	leaveRepo    leave.LeaveRepository
}

func NewReportRepository(
	db *database.DB,
	teamRepo team.TeamRepository,
	roleRepo role.RoleRepository,
	timeTypeRepo timetype.TimeTypeRepository,
	gtaRepo role.GeneralTimeAssignmentRepository,
	leaveRepo leave.LeaveRepository,
) report.Repository {
	return &reportRepositoryImpl{
		db:           db,
		teamRepo:     teamRepo,
		roleRepo:     roleRepo,
		timeTypeRepo: timeTypeRepo,
		gtaRepo:      gtaRepo,
		leaveRepo:    leaveRepo,
	}
}

func (r *reportRepositoryImpl) ListEmployees(ctx context.Context, search, roleID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, payroll_id, hours_per_week, role_id, created_at, updated_at
		FROM employees
	`
	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf(`(name ILIKE $%d OR payroll_id ILIKE $%d)`, len(args), len(args)))
	}
	if roleID != "" {
		args = append(args, roleID)
		conditions = append(conditions, fmt.Sprintf(`role_id = $%d`, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	var ids []string
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.PayrollID, &emp.HoursPerWeek, &emp.RoleID,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
		ids = append(ids, emp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return employees, nil
	}

	byEmployee, err := r.assignmentsByEmployee(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].Assignments = byEmployee[employees[i].ID]
	}

	return employees, nil
}

func (r *reportRepositoryImpl) assignmentsByEmployee(ctx context.Context, employeeIDs []string) (map[string][]employee.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, team_id, start_date, end_date, created_at, updated_at
		FROM assignments
		WHERE employee_id = ANY($1)
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byEmployee := make(map[string][]employee.Assignment)
	for rows.Next() {
		var a employee.Assignment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.TeamID, &a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	return byEmployee, rows.Err()
}

func (r *reportRepositoryImpl) ListTeams(ctx context.Context) ([]team.Team, error) {
	return r.teamRepo.List(ctx)
}

func (r *reportRepositoryImpl) ListRoles(ctx context.Context) ([]role.Role, error) {
	return r.roleRepo.List(ctx)
}

func (r *reportRepositoryImpl) ListTimeTypes(ctx context.Context) ([]timetype.TimeType, error) {
	return r.timeTypeRepo.List(ctx)
}

func (r *reportRepositoryImpl) ListGeneralTimeAssignments(ctx context.Context) ([]role.GeneralTimeAssignment, error) {
	return r.gtaRepo.List(ctx)
}

func (r *reportRepositoryImpl) ListLeaves(ctx context.Context, employeeIDs []string, from, to time.Time) ([]leave.Leave, error) {
	return r.leaveRepo.ListByEmployeeIDs(ctx, employeeIDs, from, to)
}

// ListProjectActivities joins each activity date with its project and the
// team owning the project's board, which the engine needs to restrict
// project entries to an employee's current team.
func (r *reportRepositoryImpl) ListProjectActivities(ctx context.Context, from, to time.Time) ([]report.ProjectActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pa.id, pa.project_id, p.name, p.jira_id, p.is_cap_dev, b.team_id, pa.activity_date
		FROM project_activities pa
		JOIN projects p ON p.id = pa.project_id
		JOIN boards b ON b.id = p.board_id
		WHERE pa.activity_date BETWEEN $1 AND $2
		ORDER BY pa.activity_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []report.ProjectActivity
	for rows.Next() {
		var a report.ProjectActivity
		err := rows.Scan(&a.ID, &a.ProjectID, &a.ProjectName, &a.JiraID, &a.IsCapDev, &a.TeamID, &a.Date)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}
