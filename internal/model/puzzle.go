package model

import "time"

// PuzzleID identifies a saved puzzle
type PuzzleID string

// ResultID identifies a saved solve result
type ResultID string

// Puzzle kinds
const (
	PuzzleKindTower   = "tower"
	PuzzleKindSudoku  = "sudoku"
	PuzzleKindColumns = "columns"
)

// SavedPuzzle is a user-saved puzzle snapshot
type SavedPuzzle struct {
	ID        PuzzleID   `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Board     *Board     `json:"board,omitempty"`   // tower puzzles
	Grid      *[9][9]int `json:"grid,omitempty"`    // sudoku puzzles
	Columns   []string   `json:"columns,omitempty"` // column puzzles
	CreatedAt time.Time  `json:"created_at"`
}

// SolveResult records the outcome of solving a saved puzzle
type SolveResult struct {
	ID        ResultID      `json:"id"`
	PuzzleID  PuzzleID      `json:"puzzle_id"`
	Strategy  string        `json:"strategy"`
	Solution  *Solution     `json:"solution"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
