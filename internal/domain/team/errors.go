package team

import "errors"

var (
	ErrTeamNotFound   = errors.New("Team not found")
	ErrTeamNameExists = errors.New("Team name already exists")
	ErrBoardNotFound  = errors.New("Board not found")
	ErrBoardExists    = errors.New("Board already linked to this team")
)
