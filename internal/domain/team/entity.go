package team

import "time"

type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Boards []Board
}

// Board links a team to a Jira board. Projects hang off boards, which is how
// project activity is attributed to a team.
type Board struct {
	ID          string
	TeamID      string
	JiraBoardID string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
