package postgresql

import (
	"context"

	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) employee.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, assignment employee.Assignment) (employee.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (id, employee_id, team_id, start_date, end_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.TeamID, assignment.StartDate, assignment.EndDate,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return employee.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]employee.Assignment, error) {
	return scanAssignments(ctx, GetQuerier(ctx, r.db), employeeID)
}

func (r *assignmentRepositoryImpl) Update(ctx context.Context, assignment employee.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET team_id = $1, start_date = $2, end_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, assignment.TeamID, assignment.StartDate, assignment.EndDate, assignment.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrAssignmentNotFound
	}
	return nil
}
