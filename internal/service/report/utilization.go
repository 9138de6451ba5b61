package report

import "github.com/nzdigital/capdev-backend-go/internal/domain/report"

// Utilization holds the derived per-employee fields for one report period.
type Utilization struct {
	FullHours       float64
	ExpectedHours   float64
	IsUnderutilized bool
	MissingHours    float64
}

// CalculateUtilization sums entry hours and compares them against the
// employee's contracted weekly hours. ExpectedHours is the flat
// hours-per-week value regardless of period length. An unset contract
// (hoursPerWeek == 0) never flags the employee and never reports missing
// hours. No rounding happens here; displays round for presentation only.
func CalculateUtilization(entries []report.TimeReportEntry, hoursPerWeek float64) Utilization {
	var full float64
	for _, entry := range entries {
		full += entry.Hours
	}

	u := Utilization{
		FullHours:     full,
		ExpectedHours: hoursPerWeek,
	}
	if hoursPerWeek == 0 {
		return u
	}

	u.IsUnderutilized = full < hoursPerWeek
	if missing := hoursPerWeek - full; missing > 0 {
		u.MissingHours = missing
	}
	return u
}
