package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/project"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `id, board_id, name, jira_id, is_cap_dev, created_at, updated_at`

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, board_id, name, jira_id, is_cap_dev, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.BoardID, p.Name, p.JiraID, p.IsCapDev,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var p project.Project
	err := q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.BoardID, &p.Name, &p.JiraID, &p.IsCapDev, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByJiraID(ctx context.Context, jiraID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var p project.Project
	err := q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE jira_id = $1`, jiraID).
		Scan(&p.ID, &p.BoardID, &p.Name, &p.JiraID, &p.IsCapDev, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY name`)
}

func (r *projectRepositoryImpl) ListByBoardID(ctx context.Context, boardID string) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE board_id = $1 ORDER BY name`, boardID)
}

func (r *projectRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.BoardID, &p.Name, &p.JiraID, &p.IsCapDev, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET board_id = $1, name = $2, jira_id = $3, is_cap_dev = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, p.BoardID, p.Name, p.JiraID, p.IsCapDev, p.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) project.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Upsert keeps activity rows unique per (project, date): re-syncing the
// same day is a no-op.
func (r *activityRepositoryImpl) Upsert(ctx context.Context, activity project.Activity) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_activities (id, project_id, activity_date, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		ON CONFLICT (project_id, activity_date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, activity.ProjectID, activity.Date)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *activityRepositoryImpl) ListByProjectID(ctx context.Context, projectID string) ([]project.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, activity_date, created_at
		FROM project_activities
		WHERE project_id = $1
		ORDER BY activity_date
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *activityRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]project.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, activity_date, created_at
		FROM project_activities
		WHERE activity_date BETWEEN $1 AND $2
		ORDER BY activity_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]project.Activity, error) {
	var activities []project.Activity
	for rows.Next() {
		var a project.Activity
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
