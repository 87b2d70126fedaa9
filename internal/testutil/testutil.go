package testutil

import (
	"io"
	"log/slog"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// BoardFromRows builds a board from up to 13 rows of 9 characters each.
// Spaces and '.' are blank cells; letters become normal tiles. Rows are
// anchored at the top of the board; missing rows and short rows are blank.
func BoardFromRows(rows ...string) *model.Board {
	b := model.NewBoard()
	for row, letters := range rows {
		if row >= model.BoardRows {
			break
		}
		for col, letter := range letters {
			if col >= model.BoardCols {
				break
			}
			if letter == ' ' || letter == '.' {
				continue
			}
			b.SetLetter(model.Position{Row: row, Col: col}, letter)
		}
	}
	return b
}

// BottomRowBoard places the given letters as normal tiles along the bottom
// row, starting at column 0
func BottomRowBoard(letters string) *model.Board {
	b := model.NewBoard()
	for col, letter := range letters {
		if col >= model.BoardCols {
			break
		}
		b.SetLetter(model.Position{Row: model.BoardRows - 1, Col: col}, letter)
	}
	return b
}
