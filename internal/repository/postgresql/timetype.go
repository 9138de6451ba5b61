package postgresql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type timeTypeRepositoryImpl struct {
	db     *database.DB
	logger *slog.Logger
}

func NewTimeTypeRepository(db *database.DB, logger *slog.Logger) timetype.TimeTypeRepository {
	return &timeTypeRepositoryImpl{db: db, logger: logger}
}

func (r *timeTypeRepositoryImpl) Create(ctx context.Context, tt timetype.TimeType) (timetype.TimeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_types (id, name, is_cap_dev, weekly_schedule, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var schedule interface{}
	if tt.WeeklySchedule != nil {
		schedule = *tt.WeeklySchedule
	}

	err := q.QueryRow(ctx, query, tt.Name, tt.IsCapDev, schedule).
		Scan(&tt.ID, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		return timetype.TimeType{}, err
	}

	return tt, nil
}

func (r *timeTypeRepositoryImpl) GetByID(ctx context.Context, id string) (timetype.TimeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_cap_dev, weekly_schedule, created_at, updated_at
		FROM time_types
		WHERE id = $1
	`

	var tt timetype.TimeType
	var rawSchedule []byte
	err := q.QueryRow(ctx, query, id).
		Scan(&tt.ID, &tt.Name, &tt.IsCapDev, &rawSchedule, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timetype.TimeType{}, timetype.ErrTimeTypeNotFound
		}
		return timetype.TimeType{}, err
	}

	tt.WeeklySchedule = r.parseSchedule(tt.ID, rawSchedule)

	return tt, nil
}

func (r *timeTypeRepositoryImpl) List(ctx context.Context) ([]timetype.TimeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_cap_dev, weekly_schedule, created_at, updated_at
		FROM time_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timeTypes []timetype.TimeType
	for rows.Next() {
		var tt timetype.TimeType
		var rawSchedule []byte
		err := rows.Scan(&tt.ID, &tt.Name, &tt.IsCapDev, &rawSchedule, &tt.CreatedAt, &tt.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tt.WeeklySchedule = r.parseSchedule(tt.ID, rawSchedule)
		timeTypes = append(timeTypes, tt)
	}

	return timeTypes, rows.Err()
}

func (r *timeTypeRepositoryImpl) Update(ctx context.Context, tt timetype.TimeType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_types
		SET name = $1, is_cap_dev = $2, weekly_schedule = $3, updated_at = NOW()
		WHERE id = $4
	`

	var schedule interface{}
	if tt.WeeklySchedule != nil {
		schedule = *tt.WeeklySchedule
	}

	commandTag, err := q.Exec(ctx, query, tt.Name, tt.IsCapDev, schedule, tt.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timetype.ErrTimeTypeNotFound
	}
	return nil
}

func (r *timeTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM time_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timetype.ErrTimeTypeNotFound
	}
	return nil
}

// parseSchedule decodes the JSONB recurrence rule. A malformed rule is
// treated as absent so a single bad row can never break report generation.
func (r *timeTypeRepositoryImpl) parseSchedule(id string, raw []byte) *timetype.WeeklySchedule {
	ws, err := timetype.ParseWeeklySchedule(raw)
	if err != nil {
		r.logger.Warn("malformed weekly schedule, treating as absent",
			"time_type_id", id,
			"error", err,
		)
		return nil
	}
	return ws
}
