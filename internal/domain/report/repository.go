package report

import (
	"context"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
)

// Repository is the read-only snapshot interface the aggregation engine
// pulls from. Each report invocation issues independent reads and performs
// all merging in memory; nothing is written back.
type Repository interface {
	// ListEmployees returns employees (with team assignments attached)
	// matching the search/role filters. Empty search or an empty/"all"
	// role means no filtering on that dimension.
	ListEmployees(ctx context.Context, search, roleID string) ([]employee.Employee, error)

	ListTeams(ctx context.Context) ([]team.Team, error)
	ListRoles(ctx context.Context) ([]role.Role, error)
	ListTimeTypes(ctx context.Context) ([]timetype.TimeType, error)
	ListGeneralTimeAssignments(ctx context.Context) ([]role.GeneralTimeAssignment, error)

	ListLeaves(ctx context.Context, employeeIDs []string, from, to time.Time) ([]leave.Leave, error)
	ListProjectActivities(ctx context.Context, from, to time.Time) ([]ProjectActivity, error)
}

// Service is the report engine's entry point.
type Service interface {
	GetTimeReportData(ctx context.Context, req TimeReportRequest) (TimeReportData, error)
}
