package request

import (
	"fmt"
	"unicode"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// Kind characters used in board payloads
const (
	KindCharBlank   = '.'
	KindCharNormal  = 'n'
	KindCharRed     = 'r'
	KindCharStarred = 's'
)

// Board is the wire representation of a tower board. Rows are given top to
// bottom and anchored at the bottom of the grid: fewer than 13 rows leaves
// blank rows above. '.' or ' ' marks a blank cell. Kinds, when present, is a
// parallel set of rows of kind characters ('.', 'n', 'r', 's'); when absent
// every letter is a normal tile.
type Board struct {
	Rows  []string `json:"rows"`
	Kinds []string `json:"kinds,omitempty"`
}

// ToModel parses the payload into a board, validating dimensions, letters,
// and kind/letter consistency
func (b Board) ToModel() (*model.Board, error) {
	if len(b.Rows) > model.BoardRows {
		return nil, fmt.Errorf("%w: %d rows exceeds %d", model.ErrInvalidBoard, len(b.Rows), model.BoardRows)
	}
	if len(b.Kinds) != 0 && len(b.Kinds) != len(b.Rows) {
		return nil, fmt.Errorf("%w: %d kind rows for %d letter rows", model.ErrInvalidBoard, len(b.Kinds), len(b.Rows))
	}

	board := model.NewBoard()
	offset := model.BoardRows - len(b.Rows)

	for i, row := range b.Rows {
		letters := []rune(row)
		if len(letters) > model.BoardCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, max %d", model.ErrInvalidBoard, i, len(letters), model.BoardCols)
		}

		var kinds []rune
		if len(b.Kinds) != 0 {
			kinds = []rune(b.Kinds[i])
			if len(kinds) != len(letters) {
				return nil, fmt.Errorf("%w: kind row %d length mismatch", model.ErrInvalidBoard, i)
			}
		}

		for j, r := range letters {
			pos := model.Position{Row: offset + i, Col: j}
			cell, err := parseCell(r, kindChar(kinds, j))
			if err != nil {
				return nil, fmt.Errorf("%w at row %d col %d", err, i, j)
			}
			board.Set(pos, cell)
		}
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}

func kindChar(kinds []rune, j int) rune {
	if kinds == nil {
		return 0
	}
	return kinds[j]
}

func parseCell(letter, kind rune) (model.Cell, error) {
	if letter == '.' || letter == ' ' {
		if kind != 0 && kind != KindCharBlank {
			return model.Cell{}, fmt.Errorf("%w: blank cell has kind %q", model.ErrInvalidBoard, kind)
		}
		return model.BlankCell(), nil
	}

	lower := unicode.ToLower(letter)
	if lower < 'a' || lower > 'z' {
		return model.Cell{}, fmt.Errorf("%w: invalid letter %q", model.ErrInvalidBoard, letter)
	}

	cellKind := model.KindNormal
	switch kind {
	case 0, KindCharNormal:
	case KindCharRed:
		cellKind = model.KindRed
	case KindCharStarred:
		cellKind = model.KindStarred
	case KindCharBlank:
		return model.Cell{}, fmt.Errorf("%w: lettered cell marked blank", model.ErrInvalidBoard)
	default:
		return model.Cell{}, fmt.Errorf("%w: invalid kind %q", model.ErrInvalidBoard, kind)
	}

	return model.Cell{Letter: lower, Kind: cellKind}, nil
}

// SolveRequest is the request body for solving a tower board
type SolveRequest struct {
	Board    Board  `json:"board"`
	Strategy string `json:"strategy,omitempty"`
}

// WordsRequest is the request body for listing all words on a board
type WordsRequest struct {
	Board Board `json:"board"`
}

// SudokuRequest is the request body for solving a sudoku grid
type SudokuRequest struct {
	Grid [9][9]int `json:"grid"`
}

// WordgenRequest is the request body for generating subsequence words
type WordgenRequest struct {
	Letters string `json:"letters"`
	Doubles bool   `json:"doubles,omitempty"`
}

// ColumnsRequest is the request body for column enumeration and core words
type ColumnsRequest struct {
	Columns []string `json:"columns"`
}

// CreatePuzzleRequest is the request body for saving a puzzle
type CreatePuzzleRequest struct {
	Name    string     `json:"name"`
	Kind    string     `json:"kind"`
	Board   *Board     `json:"board,omitempty"`
	Grid    *[9][9]int `json:"grid,omitempty"`
	Columns []string   `json:"columns,omitempty"`
}

// SolvePuzzleRequest is the request body for solving a saved tower puzzle
type SolvePuzzleRequest struct {
	Strategy string `json:"strategy,omitempty"`
}
