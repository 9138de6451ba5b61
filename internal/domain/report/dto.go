package report

import (
	"fmt"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

// FilterAll is the sentinel value meaning "do not filter" for team and role.
const FilterAll = "all"

// Fallback labels for employees with no current assignment or no role.
const (
	TeamUnassigned = "Unassigned"
	RoleNone       = "No Role"
)

// TimeReportRequest carries the report filters. Team and Role are ids or
// the "all" sentinel; Search is a free-text match against employee name or
// payroll id.
type TimeReportRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Team   string `json:"team"`
	Role   string `json:"role"`
	Search string `json:"search"`
}

func (r *TimeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.From != "" {
		if _, ok := validator.IsValidDate(r.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.To != "" {
		if _, ok := validator.IsValidDate(r.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period resolves the query window. Defaults: from = start of the current
// year, to = now.
func (r *TimeReportRequest) Period(now time.Time) (time.Time, time.Time, error) {
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := now

	if r.From != "" {
		parsed, ok := validator.IsValidDate(r.From)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %s", r.From)
		}
		from = parsed
	}
	if r.To != "" {
		parsed, ok := validator.IsValidDate(r.To)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %s", r.To)
		}
		to = parsed
	}
	return from, to, nil
}

// TimeReportEntry is one unit of accounted time for one employee on one
// date. Field names follow the contract consumed by the presentation layer
// and must not change.
type TimeReportEntry struct {
	ID         string  `json:"id"`
	Hours      float64 `json:"hours"`
	TimeTypeID string  `json:"timeTypeId"`
	IsCapDev   bool    `json:"isCapDev"`

	IsLeave   bool   `json:"isLeave,omitempty"`
	LeaveType string `json:"leaveType,omitempty"`

	Date string `json:"date,omitempty"`

	ProjectID   string `json:"projectId,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
	JiraID      string `json:"jiraId,omitempty"`

	IsScheduled           bool   `json:"isScheduled,omitempty"`
	ScheduledTimeTypeName string `json:"scheduledTimeTypeName,omitempty"`
}

// TimeReport is one employee's aggregated entries over the query period
// plus derived utilization fields.
type TimeReport struct {
	ID              string            `json:"id"`
	EmployeeID      string            `json:"employeeId"`
	EmployeeName    string            `json:"employeeName"`
	PayrollID       string            `json:"payrollId"`
	FullHours       float64           `json:"fullHours"`
	ExpectedHours   float64           `json:"expectedHours"`
	IsUnderutilized bool              `json:"isUnderutilized"`
	MissingHours    float64           `json:"missingHours"`
	Team            string            `json:"team"`
	Role            string            `json:"role"`
	RoleID          string            `json:"roleId"`
	TimeEntries     []TimeReportEntry `json:"timeEntries"`
}

// TimeReportData is the full report payload: per-employee reports plus the
// lookup tables the UI renders filters from.
type TimeReportData struct {
	TimeReports        []TimeReport              `json:"timeReports"`
	Teams              []TeamOption              `json:"teams"`
	Roles              []RoleOption              `json:"roles"`
	TimeTypes          []TimeTypeOption          `json:"timeTypes"`
	GeneralAssignments []GeneralAssignmentOption `json:"generalAssignments"`
}

type TeamOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TimeTypeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GeneralAssignmentOption struct {
	ID           string  `json:"id"`
	RoleID       string  `json:"roleId"`
	TimeTypeID   string  `json:"timeTypeId"`
	HoursPerWeek float64 `json:"hoursPerWeek"`
}

// ProjectActivity is the read model the engine consumes: an activity date
// joined with its project and the owning team (via the board link).
type ProjectActivity struct {
	ID          string
	ProjectID   string
	ProjectName string
	JiraID      string
	IsCapDev    bool
	TeamID      string
	Date        time.Time
}
