package timetype

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type TimeType struct {
	ID       string
	Name     string
	IsCapDev bool

	// WeeklySchedule is an optional recurrence rule. When present, the
	// report engine synthesizes one entry per matching weekday in the
	// query window. Nil means no recurring entries are generated.
	WeeklySchedule *WeeklySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklySchedule is the JSONB recurrence rule: a set of weekday names plus
// optional default hours per occurrence.
type WeeklySchedule struct {
	Days  []string `json:"days"`
	Hours *float64 `json:"hours,omitempty"`
}

// Value implements driver.Valuer for database storage
func (ws WeeklySchedule) Value() (driver.Value, error) {
	if len(ws.Days) == 0 && ws.Hours == nil {
		return nil, nil
	}
	return json.Marshal(ws)
}

// ParseWeeklySchedule decodes the raw JSONB column. Callers treat a parse
// failure as "rule absent" and keep going; a malformed rule must never take
// down report generation.
func ParseWeeklySchedule(raw []byte) (*WeeklySchedule, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ws WeeklySchedule
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}
