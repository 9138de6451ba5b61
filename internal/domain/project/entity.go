package project

import "time"

type Project struct {
	ID        string
	BoardID   string
	Name      string
	JiraID    string
	IsCapDev  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activity records that tracked work happened on a project on a calendar
// date. One row per (project, date); duration is not recorded.
type Activity struct {
	ID        string
	ProjectID string
	Date      time.Time
	CreatedAt time.Time
}
