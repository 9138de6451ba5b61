package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nzdigital/capdev-backend-go/internal/config"
	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo      report.Repository
	projectDayHours float64
	logger          *slog.Logger
}

func NewReportService(reportRepo report.Repository, cfg config.ReportConfig, logger *slog.Logger) report.Service {
	return &ReportServiceImpl{
		reportRepo:      reportRepo,
		projectDayHours: cfg.ProjectDayHours,
		logger:          logger,
	}
}

// GetTimeReportData generates the utilization report for every employee
// matching the request filters. Each invocation reads a fresh snapshot and
// aggregates in memory; any store error fails the whole call with no
// partial result.
func (s *ReportServiceImpl) GetTimeReportData(ctx context.Context, req report.TimeReportRequest) (report.TimeReportData, error) {
	if err := req.Validate(); err != nil {
		return report.TimeReportData{}, err
	}

	from, to, err := req.Period(time.Now())
	if err != nil {
		return report.TimeReportData{}, err
	}

	roleFilter := req.Role
	if roleFilter == report.FilterAll {
		roleFilter = ""
	}

	employees, err := s.reportRepo.ListEmployees(ctx, req.Search, roleFilter)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load employees: %w", err)
	}

	// Team filtering goes through the current assignment, which depends on
	// the query window, so it happens here rather than in SQL.
	if req.Team != "" && req.Team != report.FilterAll {
		filtered := employees[:0]
		for _, emp := range employees {
			current := CurrentAssignment(emp, from, to)
			if current != nil && current.TeamID == req.Team {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	teams, err := s.reportRepo.ListTeams(ctx)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load teams: %w", err)
	}
	roles, err := s.reportRepo.ListRoles(ctx)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load roles: %w", err)
	}
	timeTypes, err := s.reportRepo.ListTimeTypes(ctx)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load time types: %w", err)
	}
	generalAssignments, err := s.reportRepo.ListGeneralTimeAssignments(ctx)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load general time assignments: %w", err)
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	leaves, err := s.reportRepo.ListLeaves(ctx, employeeIDs, from, to)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load leaves: %w", err)
	}
	activities, err := s.reportRepo.ListProjectActivities(ctx, from, to)
	if err != nil {
		return report.TimeReportData{}, fmt.Errorf("failed to load project activities: %w", err)
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}
	roleNames := make(map[string]string, len(roles))
	for _, r := range roles {
		roleNames[r.ID] = r.Name
	}

	timeTypeIDs := make(map[string]bool, len(timeTypes))
	for _, tt := range timeTypes {
		timeTypeIDs[tt.ID] = true
	}
	for _, gta := range generalAssignments {
		// A dangling reference is a data inconsistency, not a fatal
		// error; the assignment simply never prices an entry.
		if !timeTypeIDs[gta.TimeTypeID] {
			s.logger.Warn("general time assignment references missing time type",
				"general_time_assignment_id", gta.ID,
				"time_type_id", gta.TimeTypeID,
			)
		}
	}
	generalHours := BuildGeneralHoursLookup(generalAssignments)

	timeReports := make([]report.TimeReport, 0, len(employees))
	for _, emp := range employees {
		current := CurrentAssignment(emp, from, to)

		entries := SynthesizeEntries(emp, current, leaves, activities, timeTypes, generalHours, from, to, s.projectDayHours)
		utilization := CalculateUtilization(entries, emp.HoursPerWeek)

		teamName := report.TeamUnassigned
		if current != nil {
			if name, ok := teamNames[current.TeamID]; ok {
				teamName = name
			}
		}

		roleName := report.RoleNone
		roleID := ""
		if emp.RoleID != nil {
			roleID = *emp.RoleID
			if name, ok := roleNames[roleID]; ok {
				roleName = name
			}
		}

		timeReports = append(timeReports, report.TimeReport{
			ID:              uuid.NewString(),
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			PayrollID:       emp.PayrollID,
			FullHours:       utilization.FullHours,
			ExpectedHours:   utilization.ExpectedHours,
			IsUnderutilized: utilization.IsUnderutilized,
			MissingHours:    utilization.MissingHours,
			Team:            teamName,
			Role:            roleName,
			RoleID:          roleID,
			TimeEntries:     entries,
		})
	}

	data := report.TimeReportData{
		TimeReports:        timeReports,
		Teams:              make([]report.TeamOption, 0, len(teams)),
		Roles:              make([]report.RoleOption, 0, len(roles)),
		TimeTypes:          make([]report.TimeTypeOption, 0, len(timeTypes)),
		GeneralAssignments: make([]report.GeneralAssignmentOption, 0, len(generalAssignments)),
	}
	for _, t := range teams {
		data.Teams = append(data.Teams, report.TeamOption{ID: t.ID, Name: t.Name})
	}
	for _, r := range roles {
		data.Roles = append(data.Roles, report.RoleOption{ID: r.ID, Name: r.Name})
	}
	for _, tt := range timeTypes {
		data.TimeTypes = append(data.TimeTypes, report.TimeTypeOption{ID: tt.ID, Name: tt.Name})
	}
	for _, gta := range generalAssignments {
		data.GeneralAssignments = append(data.GeneralAssignments, report.GeneralAssignmentOption{
			ID:           gta.ID,
			RoleID:       gta.RoleID,
			TimeTypeID:   gta.TimeTypeID,
			HoursPerWeek: gta.HoursPerWeek,
		})
	}

	return data, nil
}
