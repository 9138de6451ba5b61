package report

import (
	"testing"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectDayHours = 8.0

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		Name:         "Alex Doe",
		PayrollID:    "PAY-001",
		HoursPerWeek: 40,
		RoleID:       strPtr("role-1"),
		Assignments: []employee.Assignment{
			{ID: "asg-1", EmployeeID: "emp-1", TeamID: "team-1", StartDate: date("2024-01-01")},
		},
	}
}

func synthesize(t *testing.T, emp employee.Employee, leaves []leave.Leave, activities []report.ProjectActivity, timeTypes []timetype.TimeType, gtas []role.GeneralTimeAssignment, from, to time.Time) []report.TimeReportEntry {
	t.Helper()
	current := CurrentAssignment(emp, from, to)
	return SynthesizeEntries(emp, current, leaves, activities, timeTypes, BuildGeneralHoursLookup(gtas), from, to, testProjectDayHours)
}

func TestCurrentAssignment(t *testing.T) {
	from, to := date("2024-06-01"), date("2024-06-07")

	t.Run("no assignments", func(t *testing.T) {
		assert.Nil(t, CurrentAssignment(employee.Employee{}, from, to))
	})

	t.Run("assignment outside window", func(t *testing.T) {
		emp := employee.Employee{Assignments: []employee.Assignment{
			{ID: "old", TeamID: "team-1", StartDate: date("2023-01-01"), EndDate: timePtr(date("2023-12-31"))},
		}}
		assert.Nil(t, CurrentAssignment(emp, from, to))
	})

	t.Run("latest start wins among overlapping", func(t *testing.T) {
		emp := employee.Employee{Assignments: []employee.Assignment{
			{ID: "earlier", TeamID: "team-1", StartDate: date("2024-01-01"), EndDate: timePtr(date("2024-06-03"))},
			{ID: "later", TeamID: "team-2", StartDate: date("2024-06-04")},
		}}
		current := CurrentAssignment(emp, from, to)
		require.NotNil(t, current)
		assert.Equal(t, "later", current.ID)
		assert.Equal(t, "team-2", current.TeamID)
	})

	t.Run("future assignment beyond window is ignored", func(t *testing.T) {
		emp := employee.Employee{Assignments: []employee.Assignment{
			{ID: "current", TeamID: "team-1", StartDate: date("2024-01-01")},
			{ID: "future", TeamID: "team-2", StartDate: date("2024-07-01")},
		}}
		current := CurrentAssignment(emp, from, to)
		require.NotNil(t, current)
		assert.Equal(t, "current", current.ID)
	})
}

func timePtr(t time.Time) *time.Time { return &t }

// One leave record of 8 hours on Monday 2024-06-03, nothing else, for the
// week 2024-06-01..2024-06-07.
func TestSynthesizeLeaveOnlyWeek(t *testing.T) {
	emp := testEmployee()
	leaves := []leave.Leave{
		{ID: "lv-1", EmployeeID: "emp-1", Date: date("2024-06-03"), Type: "Annual Leave", Status: "Approved", Duration: 8},
	}

	entries := synthesize(t, emp, leaves, nil, nil, nil, date("2024-06-01"), date("2024-06-07"))

	require.Len(t, entries, 1)
	assert.Equal(t, 8.0, entries[0].Hours)
	assert.True(t, entries[0].IsLeave)
	assert.Equal(t, "Annual Leave", entries[0].LeaveType)
	assert.Equal(t, "2024-06-03", entries[0].Date)
	assert.NotEmpty(t, entries[0].ID)

	utilization := CalculateUtilization(entries, emp.HoursPerWeek)
	assert.Equal(t, 8.0, utilization.FullHours)
	assert.True(t, utilization.IsUnderutilized)
	assert.Equal(t, 32.0, utilization.MissingHours)
}

func TestSynthesizeProjectActivity(t *testing.T) {
	emp := testEmployee()
	activities := []report.ProjectActivity{
		{ID: "act-1", ProjectID: "proj-1", ProjectName: "Billing Revamp", JiraID: "BILL", IsCapDev: true, TeamID: "team-1", Date: date("2024-06-04")},
		{ID: "act-2", ProjectID: "proj-2", ProjectName: "Other Team Work", JiraID: "OTH", IsCapDev: false, TeamID: "team-9", Date: date("2024-06-04")},
		{ID: "act-3", ProjectID: "proj-1", ProjectName: "Billing Revamp", JiraID: "BILL", IsCapDev: true, TeamID: "team-1", Date: date("2024-06-05")},
	}

	entries := synthesize(t, emp, nil, activities, nil, nil, date("2024-06-01"), date("2024-06-07"))

	// Activity for other teams is excluded; each qualifying date counts a
	// fixed 8 hours.
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, testProjectDayHours, e.Hours)
		assert.True(t, e.IsCapDev)
		assert.Equal(t, "proj-1", e.ProjectID)
		assert.Equal(t, "Billing Revamp", e.ProjectName)
		assert.Equal(t, "BILL", e.JiraID)
	}
}

func TestSynthesizeNoTeamAssignmentSkipsProjects(t *testing.T) {
	emp := testEmployee()
	emp.Assignments = nil
	activities := []report.ProjectActivity{
		{ID: "act-1", ProjectID: "proj-1", TeamID: "team-1", Date: date("2024-06-04")},
	}

	entries := synthesize(t, emp, nil, activities, nil, nil, date("2024-06-01"), date("2024-06-07"))
	assert.Empty(t, entries)
}

// A Friday-only rule with no general time assignment yields exactly one
// scheduled entry per Friday at the rule's own hours, or 8 when the rule
// has none.
func TestSynthesizeScheduledDefaultHours(t *testing.T) {
	emp := testEmployee()

	t.Run("rule hours", func(t *testing.T) {
		timeTypes := []timetype.TimeType{
			{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}, Hours: floatPtr(2)}},
		}
		entries := synthesize(t, emp, nil, nil, timeTypes, nil, date("2024-06-01"), date("2024-06-07"))
		require.Len(t, entries, 1)
		assert.Equal(t, 2.0, entries[0].Hours)
		assert.Equal(t, "2024-06-07", entries[0].Date)
		assert.True(t, entries[0].IsScheduled)
		assert.Equal(t, "Friday Update", entries[0].ScheduledTimeTypeName)
		assert.Equal(t, "tt-1", entries[0].TimeTypeID)
	})

	t.Run("fallback to 8", func(t *testing.T) {
		timeTypes := []timetype.TimeType{
			{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}}},
		}
		entries := synthesize(t, emp, nil, nil, timeTypes, nil, date("2024-06-01"), date("2024-06-07"))
		require.Len(t, entries, 1)
		assert.Equal(t, 8.0, entries[0].Hours)
	})

	t.Run("one entry per matching weekday over multiple weeks", func(t *testing.T) {
		timeTypes := []timetype.TimeType{
			{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}, Hours: floatPtr(1)}},
		}
		// 2024-06-01..2024-06-28 contains four Fridays.
		entries := synthesize(t, emp, nil, nil, timeTypes, nil, date("2024-06-01"), date("2024-06-28"))
		require.Len(t, entries, 4)
		wantDates := []string{"2024-06-07", "2024-06-14", "2024-06-21", "2024-06-28"}
		for i, e := range entries {
			assert.Equal(t, wantDates[i], e.Date)
			assert.Equal(t, 1.0, e.Hours)
		}
	})
}

// The role's general time assignment takes precedence over the rule's own
// hours.
func TestSynthesizeScheduledGeneralAssignmentHours(t *testing.T) {
	emp := testEmployee()
	timeTypes := []timetype.TimeType{
		{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}, Hours: floatPtr(4)}},
	}
	gtas := []role.GeneralTimeAssignment{
		{ID: "gta-1", RoleID: "role-1", TimeTypeID: "tt-1", HoursPerWeek: 1},
	}

	entries := synthesize(t, emp, nil, nil, timeTypes, gtas, date("2024-06-01"), date("2024-06-07"))
	require.Len(t, entries, 1)
	assert.Equal(t, 1.0, entries[0].Hours)

	t.Run("other role's assignment does not apply", func(t *testing.T) {
		otherGtas := []role.GeneralTimeAssignment{
			{ID: "gta-2", RoleID: "role-9", TimeTypeID: "tt-1", HoursPerWeek: 1},
		}
		entries := synthesize(t, emp, nil, nil, timeTypes, otherGtas, date("2024-06-01"), date("2024-06-07"))
		require.Len(t, entries, 1)
		assert.Equal(t, 4.0, entries[0].Hours)
	})

	t.Run("employee without role falls back to rule hours", func(t *testing.T) {
		noRole := testEmployee()
		noRole.RoleID = nil
		entries := synthesize(t, noRole, nil, nil, timeTypes, gtas, date("2024-06-01"), date("2024-06-07"))
		require.Len(t, entries, 1)
		assert.Equal(t, 4.0, entries[0].Hours)
	})
}

// Leave, project and scheduled entries on the same date are all kept;
// accounting is additive with no mutual exclusion.
func TestSynthesizeAdditiveSources(t *testing.T) {
	emp := testEmployee()
	friday := date("2024-06-07")
	leaves := []leave.Leave{
		{ID: "lv-1", EmployeeID: "emp-1", Date: friday, Type: "Annual Leave", Duration: 8},
	}
	activities := []report.ProjectActivity{
		{ID: "act-1", ProjectID: "proj-1", ProjectName: "Billing Revamp", IsCapDev: true, TeamID: "team-1", Date: friday},
	}
	timeTypes := []timetype.TimeType{
		{ID: "tt-1", Name: "Friday Update", WeeklySchedule: &timetype.WeeklySchedule{Days: []string{"friday"}, Hours: floatPtr(1)}},
	}

	entries := synthesize(t, emp, leaves, activities, timeTypes, nil, date("2024-06-01"), friday)

	require.Len(t, entries, 3)

	var full float64
	for _, e := range entries {
		full += e.Hours
	}
	assert.Equal(t, 8.0+8.0+1.0, full)

	// Scheduled entries sort before non-scheduled within the date.
	assert.True(t, entries[0].IsScheduled)
	assert.False(t, entries[1].IsScheduled)
	assert.False(t, entries[2].IsScheduled)
}

func TestSynthesizeIgnoresOutOfRangeAndOtherEmployees(t *testing.T) {
	emp := testEmployee()
	leaves := []leave.Leave{
		{ID: "lv-1", EmployeeID: "emp-1", Date: date("2024-05-31"), Type: "Annual Leave", Duration: 8},
		{ID: "lv-2", EmployeeID: "emp-2", Date: date("2024-06-03"), Type: "Annual Leave", Duration: 8},
		{ID: "lv-3", EmployeeID: "emp-1", Date: date("2024-06-08"), Type: "Annual Leave", Duration: 8},
		{ID: "lv-4", EmployeeID: "emp-1", Date: date("2024-06-07"), Type: "Sick Leave", Duration: 4},
	}

	entries := synthesize(t, emp, leaves, nil, nil, nil, date("2024-06-01"), date("2024-06-07"))
	require.Len(t, entries, 1)
	assert.Equal(t, "Sick Leave", entries[0].LeaveType)
	assert.Equal(t, 4.0, entries[0].Hours)
}

// The boundary dates of the window are inclusive on both ends.
func TestSynthesizeInclusiveBounds(t *testing.T) {
	emp := testEmployee()
	leaves := []leave.Leave{
		{ID: "lv-1", EmployeeID: "emp-1", Date: date("2024-06-01"), Type: "Annual Leave", Duration: 8},
		{ID: "lv-2", EmployeeID: "emp-1", Date: date("2024-06-07"), Type: "Annual Leave", Duration: 8},
	}

	entries := synthesize(t, emp, leaves, nil, nil, nil, date("2024-06-01"), date("2024-06-07"))
	assert.Len(t, entries, 2)
}
