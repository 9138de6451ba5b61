package role

import "time"

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeneralTimeAssignment is a role-level default weekly hour allocation to a
// time type. Unique per (RoleID, TimeTypeID). Used both as an expectation
// baseline and to price scheduled entries generated from recurrence rules.
type GeneralTimeAssignment struct {
	ID           string
	RoleID       string
	TimeTypeID   string
	HoursPerWeek float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
