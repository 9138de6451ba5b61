package report

import (
	"testing"

	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func entriesWithHours(hours ...float64) []report.TimeReportEntry {
	entries := make([]report.TimeReportEntry, 0, len(hours))
	for _, h := range hours {
		entries = append(entries, report.TimeReportEntry{Hours: h})
	}
	return entries
}

func TestCalculateUtilization(t *testing.T) {
	cases := []struct {
		name         string
		hours        []float64
		hoursPerWeek float64
		want         Utilization
	}{
		{
			name:         "under contracted hours",
			hours:        []float64{8},
			hoursPerWeek: 40,
			want:         Utilization{FullHours: 8, ExpectedHours: 40, IsUnderutilized: true, MissingHours: 32},
		},
		{
			name:         "exactly contracted hours",
			hours:        []float64{20, 20},
			hoursPerWeek: 40,
			want:         Utilization{FullHours: 40, ExpectedHours: 40},
		},
		{
			name:         "over contracted hours never reports negative missing",
			hours:        []float64{30, 20},
			hoursPerWeek: 40,
			want:         Utilization{FullHours: 50, ExpectedHours: 40},
		},
		{
			name:         "unset contract is never flagged",
			hours:        nil,
			hoursPerWeek: 0,
			want:         Utilization{},
		},
		{
			name:         "unset contract with logged hours",
			hours:        []float64{12},
			hoursPerWeek: 0,
			want:         Utilization{FullHours: 12},
		},
		{
			name:         "no entries",
			hours:        nil,
			hoursPerWeek: 40,
			want:         Utilization{ExpectedHours: 40, IsUnderutilized: true, MissingHours: 40},
		},
		{
			name:         "fractional hours are not rounded",
			hours:        []float64{7.5},
			hoursPerWeek: 40,
			want:         Utilization{FullHours: 7.5, ExpectedHours: 40, IsUnderutilized: true, MissingHours: 32.5},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateUtilization(entriesWithHours(c.hours...), c.hoursPerWeek)
			assert.Equal(t, c.want, got)
		})
	}
}

// isUnderutilized must be true exactly when fullHours < expectedHours, for
// any positive contract.
func TestUtilizationMonotonicity(t *testing.T) {
	const expected = 40.0
	for full := 0.0; full <= 80; full += 2.5 {
		got := CalculateUtilization(entriesWithHours(full), expected)
		assert.Equal(t, full < expected, got.IsUnderutilized, "fullHours=%v", full)
		assert.GreaterOrEqual(t, got.MissingHours, 0.0, "fullHours=%v", full)
		if full < expected {
			assert.Equal(t, expected-full, got.MissingHours, "fullHours=%v", full)
		} else {
			assert.Zero(t, got.MissingHours, "fullHours=%v", full)
		}
	}
}
