package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type generalTimeAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewGeneralTimeAssignmentRepository(db *database.DB) role.GeneralTimeAssignmentRepository {
	return &generalTimeAssignmentRepositoryImpl{db: db}
}

func (r *generalTimeAssignmentRepositoryImpl) Create(ctx context.Context, assignment role.GeneralTimeAssignment) (role.GeneralTimeAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO general_time_assignments (id, role_id, time_type_id, hours_per_week, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.RoleID, assignment.TimeTypeID, assignment.HoursPerWeek,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return role.GeneralTimeAssignment{}, err
	}

	return assignment, nil
}

func (r *generalTimeAssignmentRepositoryImpl) GetByRoleID(ctx context.Context, roleID string) ([]role.GeneralTimeAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, role_id, time_type_id, hours_per_week, created_at, updated_at
		FROM general_time_assignments
		WHERE role_id = $1
	`

	rows, err := q.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGeneralTimeAssignments(rows)
}

func (r *generalTimeAssignmentRepositoryImpl) List(ctx context.Context) ([]role.GeneralTimeAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, role_id, time_type_id, hours_per_week, created_at, updated_at
		FROM general_time_assignments
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGeneralTimeAssignments(rows)
}

func (r *generalTimeAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM general_time_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return role.ErrGeneralTimeAssignmentNotFound
	}
	return nil
}

func scanGeneralTimeAssignments(rows pgx.Rows) ([]role.GeneralTimeAssignment, error) {
	var assignments []role.GeneralTimeAssignment
	for rows.Next() {
		var gta role.GeneralTimeAssignment
		err := rows.Scan(&gta.ID, &gta.RoleID, &gta.TimeTypeID, &gta.HoursPerWeek, &gta.CreatedAt, &gta.UpdatedAt)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, gta)
	}
	return assignments, rows.Err()
}
