package sudoku

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// GridSize is the side length of a sudoku grid; 0 marks an empty cell
const GridSize = 9

type ServiceInterface interface {
	Solve(grid [GridSize][GridSize]int) ([GridSize][GridSize]int, error)
}

// Service solves standard 9x9 sudoku grids by backtracking with per-row,
// per-column, and per-box candidate bitmasks
type Service struct {
	logger *slog.Logger
}

var _ ServiceInterface = (*Service)(nil)

func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "sudoku")),
	}
}

// Solve returns a completed grid, or ErrInvalidGrid for out-of-range or
// conflicting givens, or ErrNoSolution when the givens admit no completion.
// The input grid is not modified.
func (s *Service) Solve(grid [GridSize][GridSize]int) ([GridSize][GridSize]int, error) {
	var st state
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			v := grid[row][col]
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				return grid, fmt.Errorf("%w: cell (%d,%d) holds %d", model.ErrInvalidGrid, row, col, v)
			}
			if st.taken(row, col, v) {
				return grid, fmt.Errorf("%w: %d repeats in row, column, or box at (%d,%d)", model.ErrInvalidGrid, v, row, col)
			}
			st.place(row, col, v)
		}
	}

	solved := grid
	if !solve(&solved, &st, 0) {
		return grid, model.ErrNoSolution
	}
	return solved, nil
}

// state tracks which digits are used per row, column, and 3x3 box as 9-bit
// masks (bit v-1 set means digit v is taken)
type state struct {
	rows  [GridSize]uint16
	cols  [GridSize]uint16
	boxes [GridSize]uint16
}

func boxIndex(row, col int) int {
	return (row/3)*3 + col/3
}

func (st *state) taken(row, col, v int) bool {
	bit := uint16(1) << (v - 1)
	return st.rows[row]&bit != 0 || st.cols[col]&bit != 0 || st.boxes[boxIndex(row, col)]&bit != 0
}

func (st *state) place(row, col, v int) {
	bit := uint16(1) << (v - 1)
	st.rows[row] |= bit
	st.cols[col] |= bit
	st.boxes[boxIndex(row, col)] |= bit
}

func (st *state) remove(row, col, v int) {
	bit := uint16(1) << (v - 1)
	st.rows[row] &^= bit
	st.cols[col] &^= bit
	st.boxes[boxIndex(row, col)] &^= bit
}

// solve fills cells in row-major order from linear index idx
func solve(grid *[GridSize][GridSize]int, st *state, idx int) bool {
	for ; idx < GridSize*GridSize; idx++ {
		if grid[idx/GridSize][idx%GridSize] == 0 {
			break
		}
	}
	if idx == GridSize*GridSize {
		return true
	}

	row, col := idx/GridSize, idx%GridSize
	for v := 1; v <= 9; v++ {
		if st.taken(row, col, v) {
			continue
		}
		grid[row][col] = v
		st.place(row, col, v)
		if solve(grid, st, idx+1) {
			return true
		}
		st.remove(row, col, v)
		grid[row][col] = 0
	}
	return false
}
