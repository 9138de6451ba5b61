package postgresql

import (
	"context"

	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type boardRepositoryImpl struct {
	db *database.DB
}

func NewBoardRepository(db *database.DB) team.BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) Create(ctx context.Context, board team.Board) (team.Board, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO boards (id, team_id, jira_board_id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		board.TeamID, board.JiraBoardID, board.Name,
	).Scan(&board.ID, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return team.Board{}, err
	}

	return board, nil
}

func (r *boardRepositoryImpl) GetByTeamID(ctx context.Context, teamID string) ([]team.Board, error) {
	return scanBoardsByTeam(ctx, GetQuerier(ctx, r.db), teamID)
}

func (r *boardRepositoryImpl) List(ctx context.Context) ([]team.Board, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, team_id, jira_board_id, name, created_at, updated_at
		FROM boards
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []team.Board
	for rows.Next() {
		var b team.Board
		if err := rows.Scan(&b.ID, &b.TeamID, &b.JiraBoardID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}

	return boards, rows.Err()
}

func (r *boardRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return team.ErrBoardNotFound
	}
	return nil
}
