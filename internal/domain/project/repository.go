package project

import (
	"context"
	"time"
)

// ProjectRepository - interface for projects table
type ProjectRepository interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	GetByJiraID(ctx context.Context, jiraID string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByBoardID(ctx context.Context, boardID string) ([]Project, error)
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository - interface for project_activities table
type ActivityRepository interface {
	// Upsert inserts the activity unless a row for (project, date) already
	// exists. Returns true when a new row was written.
	Upsert(ctx context.Context, activity Activity) (bool, error)
	ListByProjectID(ctx context.Context, projectID string) ([]Activity, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Activity, error)
}
