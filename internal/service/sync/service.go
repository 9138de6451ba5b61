package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/integration"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/project"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/ipayroll"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/jira"
	"golang.org/x/oauth2"
)

// syncLookback bounds how far back each sync run scans for changes. Runs
// overlap, so records missed by one run are picked up by the next.
const syncLookback = 30 * 24 * time.Hour

const dateLayout = "2006-01-02"

type JiraSyncResult struct {
	Boards        int `json:"boards"`
	Issues        int `json:"issues"`
	NewProjects   int `json:"new_projects"`
	NewActivities int `json:"new_activities"`
}

type IPayrollSyncResult struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// JiraClient is the slice of the Jira adapter the sync job depends on.
type JiraClient interface {
	BoardIssues(ctx context.Context, jiraBoardID string, since time.Time) ([]jira.Issue, error)
}

type SyncService interface {
	// SyncJira walks every linked board and records a project activity for
	// each (project, date) an issue was updated on.
	SyncJira(ctx context.Context) (JiraSyncResult, error)
	// SyncIPayroll imports approved leave records from the payroll system.
	SyncIPayroll(ctx context.Context) (IPayrollSyncResult, error)
	// StoreIPayrollToken persists the token obtained from the OAuth callback.
	StoreIPayrollToken(ctx context.Context, token *oauth2.Token) error
}

type syncServiceImpl struct {
	boardRepo    team.BoardRepository
	projectRepo  project.ProjectRepository
	activityRepo project.ActivityRepository
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	tokenRepo    integration.OAuthTokenRepository
	jiraClient   JiraClient
	ipayroll     ipayroll.Service
	logger       *slog.Logger
}

func NewSyncService(
	boardRepo team.BoardRepository,
	projectRepo project.ProjectRepository,
	activityRepo project.ActivityRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	tokenRepo integration.OAuthTokenRepository,
	jiraClient JiraClient,
	ipayrollService ipayroll.Service,
	logger *slog.Logger,
) SyncService {
	return &syncServiceImpl{
		boardRepo:    boardRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		tokenRepo:    tokenRepo,
		jiraClient:   jiraClient,
		ipayroll:     ipayrollService,
		logger:       logger,
	}
}

func (s *syncServiceImpl) SyncJira(ctx context.Context) (JiraSyncResult, error) {
	boards, err := s.boardRepo.List(ctx)
	if err != nil {
		return JiraSyncResult{}, fmt.Errorf("failed to list boards: %w", err)
	}

	since := time.Now().Add(-syncLookback)
	result := JiraSyncResult{Boards: len(boards)}

	for _, board := range boards {
		issues, err := s.jiraClient.BoardIssues(ctx, board.JiraBoardID, since)
		if err != nil {
			return JiraSyncResult{}, fmt.Errorf("failed to fetch issues for board %s: %w", board.JiraBoardID, err)
		}
		result.Issues += len(issues)

		for _, issue := range issues {
			proj, created, err := s.ensureProject(ctx, board.ID, issue)
			if err != nil {
				return JiraSyncResult{}, err
			}
			if created {
				result.NewProjects++
			}

			inserted, err := s.activityRepo.Upsert(ctx, project.Activity{
				ProjectID: proj.ID,
				Date:      issue.Updated.Truncate(24 * time.Hour),
			})
			if err != nil {
				return JiraSyncResult{}, fmt.Errorf("failed to record activity for %s: %w", issue.Key, err)
			}
			if inserted {
				result.NewActivities++
			}
		}
	}

	s.logger.Info("jira sync completed",
		"boards", result.Boards,
		"issues", result.Issues,
		"new_projects", result.NewProjects,
		"new_activities", result.NewActivities,
	)
	return result, nil
}

func (s *syncServiceImpl) ensureProject(ctx context.Context, boardID string, issue jira.Issue) (project.Project, bool, error) {
	proj, err := s.projectRepo.GetByJiraID(ctx, issue.ProjectKey)
	if err == nil {
		return proj, false, nil
	}
	if !errors.Is(err, project.ErrProjectNotFound) {
		return project.Project{}, false, fmt.Errorf("failed to look up project %s: %w", issue.ProjectKey, err)
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		BoardID: boardID,
		Name:    issue.ProjectName,
		JiraID:  issue.ProjectKey,
	})
	if err != nil {
		return project.Project{}, false, fmt.Errorf("failed to create project %s: %w", issue.ProjectKey, err)
	}
	return created, true, nil
}

func (s *syncServiceImpl) SyncIPayroll(ctx context.Context) (IPayrollSyncResult, error) {
	stored, err := s.tokenRepo.GetByProvider(ctx, integration.ProviderIPayroll)
	if err != nil {
		return IPayrollSyncResult{}, err
	}

	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	}

	to := time.Now()
	from := to.Add(-syncLookback)
	records, current, err := s.ipayroll.FetchLeaveRecords(ctx, token, from, to)
	if err != nil {
		return IPayrollSyncResult{}, fmt.Errorf("failed to fetch leave records: %w", err)
	}

	// Persist the possibly refreshed token so the next run keeps working.
	if current.AccessToken != stored.AccessToken {
		if err := s.StoreIPayrollToken(ctx, current); err != nil {
			return IPayrollSyncResult{}, err
		}
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return IPayrollSyncResult{}, fmt.Errorf("failed to list employees: %w", err)
	}
	byPayrollID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byPayrollID[e.PayrollID] = e
	}

	result := IPayrollSyncResult{Fetched: len(records)}
	for _, record := range records {
		emp, ok := byPayrollID[record.EmployeeID]
		if !ok {
			s.logger.Warn("skipping leave record for unknown payroll id",
				"payroll_id", record.EmployeeID,
				"external_id", record.ExternalID(),
			)
			result.Skipped++
			continue
		}

		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			s.logger.Warn("skipping leave record with unparseable date",
				"external_id", record.ExternalID(),
				"date", record.Date,
			)
			result.Skipped++
			continue
		}

		externalID := record.ExternalID()
		_, err = s.leaveRepo.UpsertExternal(ctx, leave.Leave{
			EmployeeID: emp.ID,
			Date:       date,
			Type:       record.LeaveType,
			Status:     record.Status,
			Duration:   record.Hours(),
			ExternalID: &externalID,
		})
		if err != nil {
			return IPayrollSyncResult{}, fmt.Errorf("failed to import leave record %s: %w", externalID, err)
		}
		result.Imported++
	}

	s.logger.Info("ipayroll sync completed",
		"fetched", result.Fetched,
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (s *syncServiceImpl) StoreIPayrollToken(ctx context.Context, token *oauth2.Token) error {
	_, err := s.tokenRepo.Upsert(ctx, integration.OAuthToken{
		Provider:     integration.ProviderIPayroll,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	})
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}
