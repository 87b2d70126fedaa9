package response

import (
	"strings"
	"time"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// Board is the wire representation of a tower board: 13 rows of 9 characters,
// '.' for blank cells, with a parallel set of kind rows
type Board struct {
	Rows  []string `json:"rows"`
	Kinds []string `json:"kinds"`
}

// BoardFromModel converts a model.Board to its wire representation
func BoardFromModel(b *model.Board) Board {
	rows := make([]string, model.BoardRows)
	kinds := make([]string, model.BoardRows)

	for row := 0; row < model.BoardRows; row++ {
		var letters, kindChars strings.Builder
		for col := 0; col < model.BoardCols; col++ {
			cell := b.Get(model.Position{Row: row, Col: col})
			switch cell.Kind {
			case model.KindRed:
				letters.WriteRune(cell.Letter)
				kindChars.WriteByte('r')
			case model.KindStarred:
				letters.WriteRune(cell.Letter)
				kindChars.WriteByte('s')
			case model.KindNormal:
				letters.WriteRune(cell.Letter)
				kindChars.WriteByte('n')
			default:
				letters.WriteByte('.')
				kindChars.WriteByte('.')
			}
		}
		rows[row] = letters.String()
		kinds[row] = kindChars.String()
	}

	return Board{Rows: rows, Kinds: kinds}
}

// SolveResponse is the response for a tower solve
type SolveResponse struct {
	Solution *model.Solution `json:"solution"`
	Strategy string          `json:"strategy"`
	Board    Board           `json:"final_board"`
}

// WordsResponse lists every word path found on a board
type WordsResponse struct {
	Words []model.WordPath `json:"words"`
	Count int              `json:"count"`
}

// SudokuResponse is the response for a sudoku solve
type SudokuResponse struct {
	Grid [9][9]int `json:"grid"`
}

// WordListResponse is the response for wordgen and column enumeration
type WordListResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// Puzzle represents a saved puzzle in API responses
type Puzzle struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Board     *Board     `json:"board,omitempty"`
	Grid      *[9][9]int `json:"grid,omitempty"`
	Columns   []string   `json:"columns,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PuzzleFromModel converts a model.SavedPuzzle
func PuzzleFromModel(p *model.SavedPuzzle) Puzzle {
	resp := Puzzle{
		ID:        string(p.ID),
		Name:      p.Name,
		Kind:      p.Kind,
		Grid:      p.Grid,
		Columns:   p.Columns,
		CreatedAt: p.CreatedAt,
	}
	if p.Board != nil {
		board := BoardFromModel(p.Board)
		resp.Board = &board
	}
	return resp
}

// PuzzlesFromModel converts a list of saved puzzles
func PuzzlesFromModel(puzzles []*model.SavedPuzzle) []Puzzle {
	out := make([]Puzzle, len(puzzles))
	for i, p := range puzzles {
		out[i] = PuzzleFromModel(p)
	}
	return out
}

// Result represents a recorded solve result in API responses
type Result struct {
	ID         string          `json:"id"`
	PuzzleID   string          `json:"puzzle_id"`
	Strategy   string          `json:"strategy"`
	Solution   *model.Solution `json:"solution"`
	DurationMs int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ResultFromModel converts a model.SolveResult
func ResultFromModel(r *model.SolveResult) Result {
	return Result{
		ID:         string(r.ID),
		PuzzleID:   string(r.PuzzleID),
		Strategy:   r.Strategy,
		Solution:   r.Solution,
		DurationMs: r.Duration.Milliseconds(),
		CreatedAt:  r.CreatedAt,
	}
}

// ResultsFromModel converts a list of solve results
func ResultsFromModel(results []*model.SolveResult) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = ResultFromModel(r)
	}
	return out
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// LexiconResponse reports lexicon readiness
type LexiconResponse struct {
	Loaded    bool `json:"loaded"`
	WordCount int  `json:"word_count"`
}

// StrategiesResponse lists the available solver strategies
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}
