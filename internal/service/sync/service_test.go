package sync

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/integration"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/project"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/ipayroll"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/jira"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeBoardRepo struct {
	boards []team.Board
}

func (f *fakeBoardRepo) Create(ctx context.Context, b team.Board) (team.Board, error) { return b, nil }
func (f *fakeBoardRepo) GetByTeamID(ctx context.Context, teamID string) ([]team.Board, error) {
	return nil, nil
}
func (f *fakeBoardRepo) List(ctx context.Context) ([]team.Board, error) { return f.boards, nil }
func (f *fakeBoardRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeProjectRepo struct {
	byJiraID map[string]project.Project
	created  []project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{byJiraID: make(map[string]project.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ID = "proj-" + p.JiraID
	f.byJiraID[p.JiraID] = p
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	return project.Project{}, project.ErrProjectNotFound
}

func (f *fakeProjectRepo) GetByJiraID(ctx context.Context, jiraID string) (project.Project, error) {
	p, ok := f.byJiraID[jiraID]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]project.Project, error) { return nil, nil }
func (f *fakeProjectRepo) ListByBoardID(ctx context.Context, boardID string) ([]project.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) Update(ctx context.Context, p project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error         { return nil }

type fakeActivityRepo struct {
	seen map[string]bool
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{seen: make(map[string]bool)}
}

func (f *fakeActivityRepo) Upsert(ctx context.Context, a project.Activity) (bool, error) {
	key := a.ProjectID + "|" + a.Date.Format("2006-01-02")
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakeActivityRepo) ListByProjectID(ctx context.Context, projectID string) ([]project.Activity, error) {
	return nil, nil
}
func (f *fakeActivityRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]project.Activity, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error           { return nil }

type fakeLeaveRepo struct {
	upserted []leave.Leave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	return l, nil
}
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	return leave.Leave{}, leave.ErrLeaveNotFound
}
func (f *fakeLeaveRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) ListByEmployeeIDs(ctx context.Context, ids []string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) UpsertExternal(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	f.upserted = append(f.upserted, l)
	return l, nil
}
func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeTokenRepo struct {
	token    *integration.OAuthToken
	upserted []integration.OAuthToken
}

func (f *fakeTokenRepo) Upsert(ctx context.Context, t integration.OAuthToken) (integration.OAuthToken, error) {
	f.upserted = append(f.upserted, t)
	f.token = &t
	return t, nil
}

func (f *fakeTokenRepo) GetByProvider(ctx context.Context, provider string) (integration.OAuthToken, error) {
	if f.token == nil {
		return integration.OAuthToken{}, integration.ErrTokenNotFound
	}
	return *f.token, nil
}

func (f *fakeTokenRepo) DeleteByProvider(ctx context.Context, provider string) error { return nil }

type fakeJiraClient struct {
	issuesByBoard map[string][]jira.Issue
}

func (f *fakeJiraClient) BoardIssues(ctx context.Context, jiraBoardID string, since time.Time) ([]jira.Issue, error) {
	return f.issuesByBoard[jiraBoardID], nil
}

type fakeIPayroll struct {
	records      []ipayroll.LeaveRecord
	currentToken *oauth2.Token
}

func (f *fakeIPayroll) GenerateState(userAgent string) string { return "state" }
func (f *fakeIPayroll) RedirectURL(state string) string       { return "" }
func (f *fakeIPayroll) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return nil, nil
}

func (f *fakeIPayroll) FetchLeaveRecords(ctx context.Context, token *oauth2.Token, from, to time.Time) ([]ipayroll.LeaveRecord, *oauth2.Token, error) {
	current := f.currentToken
	if current == nil {
		current = token
	}
	return f.records, current, nil
}

type fixture struct {
	boards     *fakeBoardRepo
	projects   *fakeProjectRepo
	activities *fakeActivityRepo
	employees  *fakeEmployeeRepo
	leaves     *fakeLeaveRepo
	tokens     *fakeTokenRepo
	jira       *fakeJiraClient
	payroll    *fakeIPayroll
}

func newFixture() *fixture {
	return &fixture{
		boards:     &fakeBoardRepo{},
		projects:   newFakeProjectRepo(),
		activities: newFakeActivityRepo(),
		employees:  &fakeEmployeeRepo{},
		leaves:     &fakeLeaveRepo{},
		tokens:     &fakeTokenRepo{},
		jira:       &fakeJiraClient{issuesByBoard: make(map[string][]jira.Issue)},
		payroll:    &fakeIPayroll{},
	}
}

func (f *fixture) service() SyncService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSyncService(
		f.boards, f.projects, f.activities, f.employees, f.leaves, f.tokens,
		f.jira, f.payroll, logger,
	)
}

func TestSyncJiraCreatesProjectsAndActivities(t *testing.T) {
	f := newFixture()
	f.boards.boards = []team.Board{{ID: "board-1", TeamID: "team-1", JiraBoardID: "77"}}

	day := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)
	f.jira.issuesByBoard["77"] = []jira.Issue{
		{Key: "CAP-1", ProjectKey: "CAP", ProjectName: "CapDev Platform", Updated: day},
		{Key: "CAP-2", ProjectKey: "CAP", ProjectName: "CapDev Platform", Updated: day.Add(2 * time.Hour)},
		{Key: "CAP-3", ProjectKey: "CAP", ProjectName: "CapDev Platform", Updated: day.AddDate(0, 0, 1)},
	}

	result, err := f.service().SyncJira(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Boards)
	assert.Equal(t, 3, result.Issues)
	assert.Equal(t, 1, result.NewProjects)
	// same project + same day counts once
	assert.Equal(t, 2, result.NewActivities)

	require.Len(t, f.projects.created, 1)
	assert.Equal(t, "board-1", f.projects.created[0].BoardID)
	assert.Equal(t, "CAP", f.projects.created[0].JiraID)
}

func TestSyncJiraRerunIsIdempotent(t *testing.T) {
	f := newFixture()
	f.boards.boards = []team.Board{{ID: "board-1", JiraBoardID: "77"}}
	f.jira.issuesByBoard["77"] = []jira.Issue{
		{Key: "CAP-1", ProjectKey: "CAP", ProjectName: "CapDev Platform", Updated: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
	}

	svc := f.service()
	first, err := svc.SyncJira(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.NewActivities)

	second, err := svc.SyncJira(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewProjects)
	assert.Equal(t, 0, second.NewActivities)
}

func TestSyncIPayrollRequiresToken(t *testing.T) {
	f := newFixture()

	_, err := f.service().SyncIPayroll(context.Background())
	assert.ErrorIs(t, err, integration.ErrTokenNotFound)
}

func TestSyncIPayrollImportsApprovedLeave(t *testing.T) {
	f := newFixture()
	f.tokens.token = &integration.OAuthToken{
		Provider:    integration.ProviderIPayroll,
		AccessToken: "tok",
		Expiry:      time.Now().Add(time.Hour),
	}
	f.employees.employees = []employee.Employee{
		{ID: "emp-1", Name: "Aroha Ngata", PayrollID: "E001"},
	}
	f.payroll.records = []ipayroll.LeaveRecord{
		{ID: 9001, EmployeeID: "E001", Date: "2024-06-03", LeaveType: "Annual Leave", Status: "Approved", Quantity: decimal.NewFromFloat(8)},
		{ID: 9002, EmployeeID: "E999", Date: "2024-06-04", LeaveType: "Sick Leave", Status: "Approved", Quantity: decimal.NewFromFloat(4)},
	}

	result, err := f.service().SyncIPayroll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, f.leaves.upserted, 1)
	imported := f.leaves.upserted[0]
	assert.Equal(t, "emp-1", imported.EmployeeID)
	assert.Equal(t, "Annual Leave", imported.Type)
	assert.Equal(t, 8.0, imported.Duration)
	require.NotNil(t, imported.ExternalID)
	assert.Equal(t, "9001", *imported.ExternalID)
}

func TestSyncIPayrollPersistsRefreshedToken(t *testing.T) {
	f := newFixture()
	f.tokens.token = &integration.OAuthToken{
		Provider:    integration.ProviderIPayroll,
		AccessToken: "old",
		Expiry:      time.Now().Add(-time.Hour),
	}
	f.payroll.currentToken = &oauth2.Token{
		AccessToken:  "new",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}

	_, err := f.service().SyncIPayroll(context.Background())
	require.NoError(t, err)

	require.Len(t, f.tokens.upserted, 1)
	assert.Equal(t, "new", f.tokens.upserted[0].AccessToken)
}

func TestSyncIPayrollSkipsBadDates(t *testing.T) {
	f := newFixture()
	f.tokens.token = &integration.OAuthToken{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)}
	f.employees.employees = []employee.Employee{{ID: "emp-1", PayrollID: "E001"}}
	f.payroll.records = []ipayroll.LeaveRecord{
		{ID: 9003, EmployeeID: "E001", Date: "03/06/2024", LeaveType: "Annual Leave", Status: "Approved", Quantity: decimal.NewFromFloat(8)},
	}

	result, err := f.service().SyncIPayroll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, f.leaves.upserted)
}
