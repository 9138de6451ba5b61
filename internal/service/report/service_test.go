package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/config"
	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo is an in-memory report.Repository. ListEmployees mirrors
// the SQL contract: case-insensitive substring search on name or payroll
// id, exact role match.
type fakeReportRepo struct {
	employees  []employee.Employee
	teams      []team.Team
	roles      []role.Role
	timeTypes  []timetype.TimeType
	gtas       []role.GeneralTimeAssignment
	leaves     []leave.Leave
	activities []report.ProjectActivity
	err        error
}

func (f *fakeReportRepo) ListEmployees(_ context.Context, search, roleID string) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []employee.Employee
	for _, emp := range f.employees {
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(emp.Name), needle) &&
				!strings.Contains(strings.ToLower(emp.PayrollID), needle) {
				continue
			}
		}
		if roleID != "" {
			if emp.RoleID == nil || *emp.RoleID != roleID {
				continue
			}
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeReportRepo) ListTeams(context.Context) ([]team.Team, error) {
	return f.teams, f.err
}

func (f *fakeReportRepo) ListRoles(context.Context) ([]role.Role, error) {
	return f.roles, f.err
}

func (f *fakeReportRepo) ListTimeTypes(context.Context) ([]timetype.TimeType, error) {
	return f.timeTypes, f.err
}

func (f *fakeReportRepo) ListGeneralTimeAssignments(context.Context) ([]role.GeneralTimeAssignment, error) {
	return f.gtas, f.err
}

func (f *fakeReportRepo) ListLeaves(_ context.Context, employeeIDs []string, from, to time.Time) ([]leave.Leave, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var out []leave.Leave
	for _, l := range f.leaves {
		if ids[l.EmployeeID] && !l.Date.Before(from) && !l.Date.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListProjectActivities(_ context.Context, from, to time.Time) ([]report.ProjectActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []report.ProjectActivity
	for _, a := range f.activities {
		if !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestService(repo report.Repository) report.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportService(repo, config.ReportConfig{ProjectDayHours: 8}, logger)
}

func testRepo() *fakeReportRepo {
	return &fakeReportRepo{
		employees: []employee.Employee{
			{
				ID: "emp-1", Name: "Alex Doe", PayrollID: "PAY-001", HoursPerWeek: 40, RoleID: strPtr("role-1"),
				Assignments: []employee.Assignment{
					{ID: "asg-1", EmployeeID: "emp-1", TeamID: "team-1", StartDate: date("2024-01-01")},
				},
			},
			{
				ID: "emp-2", Name: "Billie Smith", PayrollID: "PAY-002", HoursPerWeek: 40, RoleID: strPtr("role-2"),
				Assignments: []employee.Assignment{
					{ID: "asg-2", EmployeeID: "emp-2", TeamID: "team-2", StartDate: date("2024-01-01")},
				},
			},
			{
				ID: "emp-3", Name: "Chris Crossed", PayrollID: "PAY-003", HoursPerWeek: 0,
			},
		},
		teams: []team.Team{
			{ID: "team-1", Name: "Platform"},
			{ID: "team-2", Name: "Mobile"},
		},
		roles: []role.Role{
			{ID: "role-1", Name: "Developer"},
			{ID: "role-2", Name: "Designer"},
		},
		timeTypes: []timetype.TimeType{
			{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}, Hours: floatPtr(1)}},
			{ID: "tt-2", Name: "Admin"},
		},
		gtas: []role.GeneralTimeAssignment{
			{ID: "gta-1", RoleID: "role-1", TimeTypeID: "tt-2", HoursPerWeek: 2},
		},
		leaves: []leave.Leave{
			{ID: "lv-1", EmployeeID: "emp-1", Date: date("2024-06-03"), Type: "Annual Leave", Status: "Approved", Duration: 8},
		},
	}
}

func weekRequest() report.TimeReportRequest {
	return report.TimeReportRequest{From: "2024-06-01", To: "2024-06-07"}
}

func reportByEmployee(t *testing.T, data report.TimeReportData, employeeID string) report.TimeReport {
	t.Helper()
	for _, tr := range data.TimeReports {
		if tr.EmployeeID == employeeID {
			return tr
		}
	}
	t.Fatalf("no time report for employee %s", employeeID)
	return report.TimeReport{}
}

func TestGetTimeReportDataAssembly(t *testing.T) {
	svc := newTestService(testRepo())

	data, err := svc.GetTimeReportData(context.Background(), weekRequest())
	require.NoError(t, err)

	require.Len(t, data.TimeReports, 3)
	assert.Len(t, data.Teams, 2)
	assert.Len(t, data.Roles, 2)
	assert.Len(t, data.TimeTypes, 2)
	assert.Len(t, data.GeneralAssignments, 1)

	tr := reportByEmployee(t, data, "emp-1")
	assert.Equal(t, "Alex Doe", tr.EmployeeName)
	assert.Equal(t, "PAY-001", tr.PayrollID)
	assert.Equal(t, "Platform", tr.Team)
	assert.Equal(t, "Developer", tr.Role)
	assert.Equal(t, "role-1", tr.RoleID)

	// 8h leave + 1h scheduled Friday Update.
	assert.Equal(t, 9.0, tr.FullHours)
	assert.Equal(t, 40.0, tr.ExpectedHours)
	assert.True(t, tr.IsUnderutilized)
	assert.Equal(t, 31.0, tr.MissingHours)
}

func TestGetTimeReportDataFallbackLabels(t *testing.T) {
	svc := newTestService(testRepo())

	data, err := svc.GetTimeReportData(context.Background(), weekRequest())
	require.NoError(t, err)

	tr := reportByEmployee(t, data, "emp-3")
	assert.Equal(t, report.TeamUnassigned, tr.Team)
	assert.Equal(t, report.RoleNone, tr.Role)
	assert.Empty(t, tr.RoleID)

	// Unset contracted hours never flag the employee, even though the
	// Friday rule still synthesizes an entry.
	assert.False(t, tr.IsUnderutilized)
	assert.Zero(t, tr.MissingHours)
}

func TestGetTimeReportDataFilterIndependence(t *testing.T) {
	svc := newTestService(testRepo())
	ctx := context.Background()

	base, err := svc.GetTimeReportData(ctx, weekRequest())
	require.NoError(t, err)

	for _, req := range []report.TimeReportRequest{
		{From: "2024-06-01", To: "2024-06-07", Team: report.FilterAll},
		{From: "2024-06-01", To: "2024-06-07", Role: report.FilterAll},
		{From: "2024-06-01", To: "2024-06-07", Team: report.FilterAll, Role: report.FilterAll},
	} {
		data, err := svc.GetTimeReportData(ctx, req)
		require.NoError(t, err)
		assert.Len(t, data.TimeReports, len(base.TimeReports))
	}
}

func TestGetTimeReportDataTeamFilter(t *testing.T) {
	svc := newTestService(testRepo())

	req := weekRequest()
	req.Team = "team-2"
	data, err := svc.GetTimeReportData(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, data.TimeReports, 1)
	assert.Equal(t, "emp-2", data.TimeReports[0].EmployeeID)
}

func TestGetTimeReportDataRoleFilter(t *testing.T) {
	svc := newTestService(testRepo())

	req := weekRequest()
	req.Role = "role-1"
	data, err := svc.GetTimeReportData(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, data.TimeReports, 1)
	assert.Equal(t, "emp-1", data.TimeReports[0].EmployeeID)
}

func TestGetTimeReportDataSearchFilter(t *testing.T) {
	svc := newTestService(testRepo())
	ctx := context.Background()

	req := weekRequest()
	req.Search = "billie"
	data, err := svc.GetTimeReportData(ctx, req)
	require.NoError(t, err)
	require.Len(t, data.TimeReports, 1)
	assert.Equal(t, "emp-2", data.TimeReports[0].EmployeeID)

	// Payroll id matches too.
	req.Search = "pay-003"
	data, err = svc.GetTimeReportData(ctx, req)
	require.NoError(t, err)
	require.Len(t, data.TimeReports, 1)
	assert.Equal(t, "emp-3", data.TimeReports[0].EmployeeID)
}

func TestGetTimeReportDataCombinedFilters(t *testing.T) {
	svc := newTestService(testRepo())

	req := weekRequest()
	req.Search = "alex"
	req.Role = "role-2"
	data, err := svc.GetTimeReportData(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, data.TimeReports)
}

func TestGetTimeReportDataInvalidDates(t *testing.T) {
	svc := newTestService(testRepo())

	_, err := svc.GetTimeReportData(context.Background(), report.TimeReportRequest{From: "not-a-date"})
	assert.Error(t, err)
}

func TestGetTimeReportDataStoreErrorIsFatal(t *testing.T) {
	repo := testRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.GetTimeReportData(context.Background(), weekRequest())
	assert.Error(t, err)
}

func TestGetTimeReportDataProjectActivityRestrictedToCurrentTeam(t *testing.T) {
	repo := testRepo()
	repo.activities = []report.ProjectActivity{
		{ID: "act-1", ProjectID: "proj-1", ProjectName: "Billing Revamp", JiraID: "BILL", IsCapDev: true, TeamID: "team-1", Date: date("2024-06-04")},
	}
	svc := newTestService(repo)

	data, err := svc.GetTimeReportData(context.Background(), weekRequest())
	require.NoError(t, err)

	// Only emp-1 is on team-1.
	tr1 := reportByEmployee(t, data, "emp-1")
	tr2 := reportByEmployee(t, data, "emp-2")

	var projects1, projects2 int
	for _, e := range tr1.TimeEntries {
		if e.ProjectID != "" {
			projects1++
		}
	}
	for _, e := range tr2.TimeEntries {
		if e.ProjectID != "" {
			projects2++
		}
	}
	assert.Equal(t, 1, projects1)
	assert.Zero(t, projects2)
}
