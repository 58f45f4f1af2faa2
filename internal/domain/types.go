package domain

import "errors"

// Level is a starting layout. Bottles are listed bottom to top.
type Level struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	// Depth is the solver depth limit suggested for this level; 0 means the configured default.
	Depth   int       `json:"depth,omitempty"`
	Bottles [][]Color `json:"bottles"`
}

// Board builds a fresh board for the level.
func (l *Level) Board() (*Board, error) {
	return NewBoardFromColors(l.Bottles)
}

// LevelMeta is a lightweight listing entry.
type LevelMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Bottles    int        `json:"bottles"`
}

// ColorConflict reports a colour that does not fill exactly one bottle.
type ColorConflict struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Hint is a suggested next pour.
type Hint struct {
	Message string `json:"message,omitempty"`
	Move    Move   `json:"move"`
	// Remaining is the length of the solution the move starts.
	Remaining int `json:"remaining,omitempty"`
}

var ErrLevelNotFound = errors.New("level not found")
