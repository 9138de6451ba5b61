package report

import (
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
)

// ScheduleActive reports whether a time type's recurrence rule is active on
// the given date. Weekday names match case-insensitively; an absent rule or
// an empty day set never matches, so a missing or malformed rule can never
// synthesize entries. Unrecognized day names are skipped.
func ScheduleActive(ws *timetype.WeeklySchedule, date time.Time) bool {
	if ws == nil || len(ws.Days) == 0 {
		return false
	}
	for _, name := range ws.Days {
		day, ok := validator.ParseWeekday(name)
		if !ok {
			continue
		}
		if day == date.Weekday() {
			return true
		}
	}
	return false
}
