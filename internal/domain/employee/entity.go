package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	PayrollID    string
	HoursPerWeek float64 // 0 means unset; such employees are never flagged as underutilized
	RoleID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Assignments []Assignment
}

// Assignment is a time-bounded membership of an employee in a team.
// A nil EndDate means the assignment is open-ended.
type Assignment struct {
	ID         string
	EmployeeID string
	TeamID     string
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActiveAt reports whether the assignment covers the given instant.
func (a Assignment) ActiveAt(t time.Time) bool {
	if t.Before(a.StartDate) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(t)
}

// OverlapsRange reports whether the assignment interval intersects [from, to].
func (a Assignment) OverlapsRange(from, to time.Time) bool {
	if a.StartDate.After(to) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(from)
}

// Overlaps reports whether two assignment intervals intersect. Used to
// reject a second active assignment covering the same instant.
func (a Assignment) Overlaps(b Assignment) bool {
	if a.EndDate != nil && a.EndDate.Before(b.StartDate) {
		return false
	}
	if b.EndDate != nil && b.EndDate.Before(a.StartDate) {
		return false
	}
	return true
}
