package team

import "context"

// TeamRepository - interface for teams table
type TeamRepository interface {
	Create(ctx context.Context, team Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, team Team) error
	Delete(ctx context.Context, id string) error
}

// BoardRepository - interface for boards table
type BoardRepository interface {
	Create(ctx context.Context, board Board) (Board, error)
	GetByTeamID(ctx context.Context, teamID string) ([]Board, error)
	List(ctx context.Context) ([]Board, error)
	Delete(ctx context.Context, id string) error
}
