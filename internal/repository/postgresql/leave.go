package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/leave"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_date, leave_type, status, duration, external_id, created_at, updated_at`

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, employee_id, leave_date, leave_type, status, duration, external_id, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.Date, l.Type, l.Status, l.Duration, l.ExternalID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return l, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var l leave.Leave
	err := q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id).
		Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Type, &l.Status, &l.Duration, &l.ExternalID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	return l, nil
}

func (r *leaveRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE employee_id = $1 ORDER BY leave_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *leaveRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string, from, to time.Time) ([]leave.Leave, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = ANY($1) AND leave_date BETWEEN $2 AND $3
		ORDER BY leave_date
	`

	rows, err := q.Query(ctx, query, employeeIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaves(rows)
}

// UpsertExternal refreshes a payroll-imported record in place, keyed by the
// payroll system's own id.
func (r *leaveRepositoryImpl) UpsertExternal(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, employee_id, leave_date, leave_type, status, duration, external_id, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (external_id) DO UPDATE
		SET leave_date = EXCLUDED.leave_date,
			leave_type = EXCLUDED.leave_type,
			status = EXCLUDED.status,
			duration = EXCLUDED.duration,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.Date, l.Type, l.Status, l.Duration, l.ExternalID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return l, nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func scanLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Type, &l.Status, &l.Duration, &l.ExternalID, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
