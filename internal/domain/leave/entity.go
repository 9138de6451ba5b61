package leave

import "time"

// Leave is a single dated leave record for one employee. Duration is in
// hours-equivalent units as reported by the payroll system.
type Leave struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       string // free text, e.g. "Annual Leave", "Sick Leave"
	Status     string
	Duration   float64

	// ExternalID is the payroll system's record id, used to deduplicate
	// imported records. Nil for locally created leave.
	ExternalID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
