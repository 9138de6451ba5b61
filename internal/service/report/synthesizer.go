package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
)

const dateLayout = "2006-01-02"

// DefaultScheduledHours is the last-resort hours value for a scheduled
// entry when neither the role's general time assignment nor the rule
// itself specifies one.
const DefaultScheduledHours = 8

// GeneralHoursKey identifies a (role, time type) pair in the general time
// assignment lookup.
type GeneralHoursKey struct {
	RoleID     string
	TimeTypeID string
}

// GeneralHoursLookup maps (role, time type) to the role's default weekly
// hours for that category.
type GeneralHoursLookup map[GeneralHoursKey]float64

// BuildGeneralHoursLookup indexes general time assignments by role and
// time type.
func BuildGeneralHoursLookup(assignments []role.GeneralTimeAssignment) GeneralHoursLookup {
	lookup := make(GeneralHoursLookup, len(assignments))
	for _, gta := range assignments {
		lookup[GeneralHoursKey{RoleID: gta.RoleID, TimeTypeID: gta.TimeTypeID}] = gta.HoursPerWeek
	}
	return lookup
}

// CurrentAssignment picks the employee's current team assignment for the
// query window: among assignments active at any point in [from, to], the
// one with the latest start date. Returns nil when the employee has no
// assignment in the window.
func CurrentAssignment(emp employee.Employee, from, to time.Time) *employee.Assignment {
	var current *employee.Assignment
	for i := range emp.Assignments {
		a := &emp.Assignments[i]
		if !a.OverlapsRange(from, to) {
			continue
		}
		if current == nil || a.StartDate.After(current.StartDate) {
			current = a
		}
	}
	return current
}

// SynthesizeEntries produces the full set of time-report entries for one
// employee over [from, to] inclusive, merging three sources:
//
//  1. explicit leave records (hours = recorded duration),
//  2. project activity dates for the employee's current team (a fixed
//     projectDayHours per distinct activity date),
//  3. scheduled entries generated from time-type recurrence rules, priced
//     by the role's general time assignment, falling back to the rule's
//     own hours, then DefaultScheduledHours.
//
// Sources are additive: a date carrying both a leave record and a
// scheduled entry keeps both. Entries are grouped by date with scheduled
// entries ordered before non-scheduled ones within each date.
func SynthesizeEntries(
	emp employee.Employee,
	current *employee.Assignment,
	leaves []leave.Leave,
	activities []report.ProjectActivity,
	timeTypes []timetype.TimeType,
	generalHours GeneralHoursLookup,
	from, to time.Time,
	projectDayHours float64,
) []report.TimeReportEntry {
	grouped := make(map[string][]report.TimeReportEntry)
	var dateOrder []string

	add := func(date string, entry report.TimeReportEntry) {
		if _, seen := grouped[date]; !seen {
			dateOrder = append(dateOrder, date)
		}
		grouped[date] = append(grouped[date], entry)
	}

	inRange := func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}

	// Explicit leave records.
	for _, l := range leaves {
		if l.EmployeeID != emp.ID || !inRange(l.Date) {
			continue
		}
		date := l.Date.Format(dateLayout)
		add(date, report.TimeReportEntry{
			ID:        uuid.NewString(),
			Hours:     l.Duration,
			IsLeave:   true,
			LeaveType: l.Type,
			Date:      date,
		})
	}

	// Project activity for the employee's current team.
	if current != nil {
		for _, a := range activities {
			if a.TeamID != current.TeamID || !inRange(a.Date) {
				continue
			}
			date := a.Date.Format(dateLayout)
			add(date, report.TimeReportEntry{
				ID:          uuid.NewString(),
				Hours:       projectDayHours,
				IsCapDev:    a.IsCapDev,
				Date:        date,
				ProjectID:   a.ProjectID,
				ProjectName: a.ProjectName,
				JiraID:      a.JiraID,
			})
		}
	}

	// Scheduled entries from recurrence rules, one per matching
	// (date, time type).
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		for _, tt := range timeTypes {
			if !ScheduleActive(tt.WeeklySchedule, d) {
				continue
			}
			date := d.Format(dateLayout)
			add(date, report.TimeReportEntry{
				ID:                    uuid.NewString(),
				Hours:                 scheduledHours(emp, tt, generalHours),
				TimeTypeID:            tt.ID,
				IsCapDev:              tt.IsCapDev,
				Date:                  date,
				IsScheduled:           true,
				ScheduledTimeTypeName: tt.Name,
			})
		}
	}

	// Scheduled before non-scheduled within each date; the tie-break does
	// not affect totals.
	entries := make([]report.TimeReportEntry, 0, len(grouped))
	for _, date := range dateOrder {
		group := grouped[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].IsScheduled && !group[j].IsScheduled
		})
		entries = append(entries, group...)
	}
	return entries
}

// scheduledHours resolves the hours for a scheduled entry: the role's
// general time assignment wins, then the rule's own default, then 8.
func scheduledHours(emp employee.Employee, tt timetype.TimeType, generalHours GeneralHoursLookup) float64 {
	if emp.RoleID != nil {
		if hours, ok := generalHours[GeneralHoursKey{RoleID: *emp.RoleID, TimeTypeID: tt.ID}]; ok {
			return hours
		}
	}
	if tt.WeeklySchedule != nil && tt.WeeklySchedule.Hours != nil {
		return *tt.WeeklySchedule.Hours
	}
	return DefaultScheduledHours
}
